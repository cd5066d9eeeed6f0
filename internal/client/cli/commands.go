package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/scanner"
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/filex"
)

var (
	ErrUsage   = errors.New("usage")
	ErrNoCode  = errors.New("no code detected")
	ErrBadFlag = errors.New("expected on or off")
)

func usage(s string) error {
	return fmt.Errorf("%w: %s", ErrUsage, s)
}

func (a *App) Home(ctx context.Context) error {
	st := a.home.State()
	conn := a.billing.State().Status

	fmt.Fprintf(a.out, "Scans:   %d\n", st.ScanCount)
	fmt.Fprintf(a.out, "Premium: %s\n", yesNo(st.IsPremium))
	fmt.Fprintf(a.out, "Billing: %s\n", conn)
	return nil
}

// Scan decodes the given image files, or watches the frame directory until a
// code shows up or the scan timeout elapses.
func (a *App) Scan(ctx context.Context, args []string) error {
	if len(args) == 1 {
		switch args[0] {
		case "torch":
			if err := a.scanScreen.ToggleFlashlight(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Flashlight: %s\n", onOff(a.scanScreen.State().FlashlightOn))
			return nil
		case "sound":
			if err := a.scanScreen.ToggleSound(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Sound: %s\n", onOff(a.scanScreen.State().SoundEnabled))
			return nil
		case "save":
			rec, err := a.scanScreen.Save()
			if err != nil {
				return err
			}
			if rec == nil {
				return ErrNoCode
			}
			fmt.Fprintf(a.out, "Saved #%d\n", rec.ID)
			return nil
		case "clear":
			return a.scanScreen.ClearLastScanned()
		}
	}

	if err := a.scanScreen.ClearLastScanned(); err != nil {
		return err
	}
	if len(args) > 0 {
		return a.scanFiles(ctx, args)
	}
	return a.scanDir(ctx)
}

func (a *App) scanFiles(ctx context.Context, paths []string) error {
	images := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := scanner.LoadImage(p)
		if err != nil {
			return err
		}
		images = append(images, img)
	}

	for _, img := range images {
		// each file is a separate scan, even when two files hold the same code
		if err := a.scanScreen.ClearLastScanned(); err != nil {
			return err
		}
		cam := scanner.NewImageCamera(a.logger, 0, img)
		if err := a.coordinator.Run(ctx, cam); err != nil {
			return err
		}
		a.printLastScanned()
	}
	return nil
}

func (a *App) scanDir(ctx context.Context) error {
	dir, err := filex.EnsureDir(a.config.FrameDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Watching %s for frames (timeout %s)...\n", dir, a.config.ScanTimeout)

	runCtx, cancel := context.WithTimeout(ctx, a.config.ScanTimeout)
	defer cancel()

	// drop a detection left over from an earlier scan
	select {
	case <-a.detected:
	default:
	}

	done := make(chan error, 1)
	go func() {
		done <- a.coordinator.Run(runCtx, scanner.NewDirCamera(dir, a.config.FrameInterval, a.logger))
	}()

	select {
	case <-a.detected:
		cancel()
		<-done
		a.printLastScanned()
		return nil
	case err := <-done:
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return ErrNoCode
	}
}

func (a *App) printLastScanned() {
	st := a.scanScreen.State()
	if st.LastScanned == nil {
		fmt.Fprintln(a.out, "No code detected")
		return
	}
	fmt.Fprintf(a.out, "[%s] %s\n", st.LastScanned.Type, st.LastScanned.Content)
	if st.Error != "" {
		fmt.Fprintln(a.out, st.Error)
	}
}

func (a *App) History(ctx context.Context, args []string) error {
	sub := "all"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "all", "fav":
		if err := a.history.ShowFavorites(sub == "fav"); err != nil {
			return err
		}
		a.printScans(a.history.State().Scans)
		return nil

	case "star", "delete":
		if len(args) != 2 {
			return usage("history " + sub + " <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return usage("history " + sub + " <id>")
		}
		if sub == "star" {
			err = a.history.ToggleFavorite(id)
		} else {
			err = a.history.Delete(id)
		}
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("scan #%d not found", id)
		}
		return err

	case "clear":
		ok, err := GetConfirmation(a.reader, "Delete all scans?", a.out)
		if err != nil || !ok {
			return err
		}
		return a.history.DeleteAll()
	}
	return usage("history [all|fav|star <id>|delete <id>|clear]")
}

func (a *App) printScans(recs []models.ScanRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No scans")
		return
	}
	for _, r := range recs {
		star := " "
		if r.Favorite {
			star = "*"
		}
		fmt.Fprintf(a.out, "%s #%-4d %s  %-7s %s\n", star, r.ID,
			r.Timestamp.Local().Format("2006-01-02 15:04"), r.Type, r.Content)
	}
}

func (a *App) Settings(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "show" {
		a.printSettings()
		return nil
	}
	if args[0] == "support" {
		fmt.Fprintln(a.out, a.prefs.SupportLink())
		return nil
	}
	if len(args) != 2 {
		return usage("settings <name> <value>")
	}

	name, value := args[0], args[1]
	var err error
	switch name {
	case "vibration":
		var on bool
		if on, err = parseOnOff(value); err == nil {
			err = a.prefs.SetVibrationEnabled(on)
		}
	case "intensity":
		var x float64
		if x, err = strconv.ParseFloat(value, 64); err == nil {
			err = a.prefs.SetVibrationIntensity(x)
		}
	case "sound":
		var on bool
		if on, err = parseOnOff(value); err == nil {
			err = a.prefs.SetSoundEnabled(on)
		}
	case "tone":
		err = a.prefs.SetSelectedSound(value)
	case "autosave":
		var on bool
		if on, err = parseOnOff(value); err == nil {
			err = a.prefs.SetAutoSaveEnabled(on)
		}
	case "theme":
		var m models.ThemeMode
		if m, err = models.ParseThemeMode(strings.ToUpper(value)); err == nil {
			err = a.prefs.SetThemeMode(m)
		}
	case "brightness":
		var x float64
		if x, err = strconv.ParseFloat(value, 64); err == nil {
			err = a.prefs.SetScannerBrightness(x)
		}
	default:
		return usage("unknown setting " + name)
	}
	if err != nil {
		return err
	}
	a.printSettings()
	return nil
}

func (a *App) printSettings() {
	s := a.settings.Settings().Get()
	fmt.Fprintf(a.out, "vibration  %s (intensity %.2f)\n", onOff(s.VibrationEnabled), s.VibrationIntensity)
	fmt.Fprintf(a.out, "sound      %s (tone %s)\n", onOff(s.SoundEnabled), s.SelectedSound)
	fmt.Fprintf(a.out, "autosave   %s\n", onOff(s.AutoSaveEnabled))
	fmt.Fprintf(a.out, "theme      %s\n", s.ThemeMode)
	fmt.Fprintf(a.out, "brightness %.2f\n", s.ScannerBrightness)
}

func (a *App) Premium(ctx context.Context, args []string) error {
	sub := "status"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "status":
		st := a.subscription.State()
		fmt.Fprintf(a.out, "Premium: %s\n", yesNo(st.IsPremium))
		fmt.Fprintf(a.out, "Billing: %s\n", a.billing.State().Status)
		if st.LastError != "" {
			fmt.Fprintf(a.out, "Last error: %s\n", st.LastError)
		}
		return nil

	case "products":
		if err := a.subscription.LoadProducts(); err != nil {
			return err
		}
		for _, p := range a.subscription.State().Products {
			fmt.Fprintf(a.out, "%-24s %-10s %s\n", p.ProductID, p.FormattedPrice, p.Title)
		}
		return nil

	case "buy":
		if len(args) != 2 {
			return usage("premium buy <product-id>")
		}
		res, err := a.subscription.Purchase(args[1])
		if err != nil {
			return err
		}
		if res != nil && res.CheckoutURL != "" {
			fmt.Fprintf(a.out, "Complete the purchase at %s\n", res.CheckoutURL)
		}
		return nil

	case "clear":
		return a.subscription.ClearError()
	}
	return usage("premium [status|products|buy <id>|clear]")
}

func (a *App) Backup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("backup push|pull <key>|list")
	}

	switch args[0] {
	case "push":
		pass, err := a.readPassphrase(args[1:], "Passphrase (empty for none)")
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pass)

		key, err := a.backup.Push(ctx, pass)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Uploaded %s\n", key)
		return nil

	case "pull":
		if len(args) < 2 {
			return usage("backup pull <key>")
		}
		pass, err := a.readPassphrase(args[2:], "Passphrase (empty if not encrypted)")
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pass)

		n, err := a.backup.Pull(ctx, args[1], pass)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Restored %d scans\n", n)
		return nil

	case "list":
		infos, err := a.backup.List(ctx)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Fprintln(a.out, "No backups")
		}
		for _, b := range infos {
			fmt.Fprintf(a.out, "%s  %d bytes\n", b.Key, b.Size)
		}
		return nil
	}
	return usage("backup push|pull <key>|list")
}

// readPassphrase takes the passphrase from args when given, otherwise asks
// for it without echo on a terminal.
func (a *App) readPassphrase(args []string, prompt string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	if !isTerminal() {
		return nil, nil
	}
	return GetPassword(prompt, a.out)
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w, got %q", ErrBadFlag, s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
