package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/cryptox"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

const backupVersion = 1

// objectStore is the subset of *s3.Client used for backups.
type objectStore interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectStore {
		return s3.NewFromConfig(cfg, optFns...)
	}
	now = time.Now
)

// BackupConfig locates the S3 (or MinIO) bucket backups are written to.
type BackupConfig struct {
	Bucket   string
	Region   string
	Endpoint string
	User     string
	Password string
}

// BackupInfo describes one stored backup.
type BackupInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// BackupService uploads and restores the scan history.
type BackupService interface {
	// Push uploads every scan and returns the object key. A non-empty
	// passphrase encrypts the payload.
	Push(ctx context.Context, passphrase []byte) (string, error)

	// Pull downloads key and imports the records not already stored.
	Pull(ctx context.Context, key string, passphrase []byte) (int, error)

	// List returns the account's backups, newest first.
	List(ctx context.Context) ([]BackupInfo, error)
}

type backupFile struct {
	Version   int                 `json:"version"`
	Encrypted bool                `json:"encrypted"`
	Scans     []models.ScanRecord `json:"scans,omitempty"`
	Sealed    *cryptox.Sealed     `json:"sealed,omitempty"`
}

type backupService struct {
	scans     ScanService
	cfg       BackupConfig
	accountID string
	logger    logging.Logger
}

func NewBackupService(scans ScanService, cfg BackupConfig, accountID string, logger logging.Logger) BackupService {
	return &backupService{scans: scans, cfg: cfg, accountID: accountID, logger: logger}
}

func (s *backupService) getClient(ctx context.Context) (objectStore, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.User,
			s.cfg.Password,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *backupService) Push(ctx context.Context, passphrase []byte) (string, error) {
	recs, err := s.scans.All(ctx)
	if err != nil {
		return "", err
	}

	file := backupFile{Version: backupVersion}
	if len(passphrase) > 0 {
		sealed, err := cryptox.Seal(recs, passphrase)
		if err != nil {
			return "", err
		}
		file.Encrypted = true
		file.Sealed = sealed
	} else {
		file.Scans = recs
	}

	body, err := json.Marshal(file)
	if err != nil {
		return "", err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/history-%s.json", s.accountID, now().UTC().Format("20060102T150405Z"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload backup: %w", err)
	}

	s.logger.Info(ctx, "backup uploaded", "key", key, "scans", len(recs), "encrypted", file.Encrypted)
	return key, nil
}

func (s *backupService) Pull(ctx context.Context, key string, passphrase []byte) (int, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return 0, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return 0, ErrBackupNotFound
		}
		return 0, fmt.Errorf("failed to download backup: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to download backup: %w", err)
	}

	var file backupFile
	if err := json.Unmarshal(body, &file); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadBackup, err)
	}

	recs := file.Scans
	if file.Encrypted {
		if len(passphrase) == 0 {
			return 0, ErrPassphraseNeeded
		}
		if file.Sealed == nil {
			return 0, ErrBadBackup
		}
		if err := cryptox.Open(file.Sealed, passphrase, &recs); err != nil {
			return 0, err
		}
	}

	return s.scans.Import(ctx, recs)
}

func (s *backupService) List(ctx context.Context) ([]BackupInfo, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
		Prefix: aws.String(s.accountID + "/"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	infos := make([]BackupInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		k := aws.ToString(obj.Key)
		if !strings.HasSuffix(k, ".json") {
			continue
		}
		infos = append(infos, BackupInfo{
			Key:          k,
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key > infos[j].Key })
	return infos, nil
}
