package services

import "errors"

var (
	ErrBackupNotFound   = errors.New("backup not found")
	ErrBadBackup        = errors.New("malformed backup")
	ErrPassphraseNeeded = errors.New("backup is encrypted, passphrase required")
)
