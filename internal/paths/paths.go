package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName       = "appicon"
	ConfigFileName   = "appicon-config.json"
	DefaultOutputDir = "AppIcon.appiconset"
	DirPerm          = 0755
	FilePerm         = 0644
)

// IconFileName returns the asset file name for a size label.
func IconFileName(label string) string {
	return "app-icon-" + label + ".png"
}

// AtomicWrite creates path's directory if needed, writes data to a
// uniquely named sibling temp file and renames it into place. A failed
// rename removes the temp file and leaves any existing path untouched.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, FilePerm)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
	}
	return err
}

// ConfigDir is where a user-wide appicon-config.json lives. %APPDATA% wins
// when set (Windows); otherwise it is ~/.config/appicon, or a directory
// under os.TempDir() if there is no home.
func ConfigDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppDirName)
	}
	return filepath.Join(os.TempDir(), AppDirName)
}
