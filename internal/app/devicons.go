package app

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// iconFileInfo satisfies fs.FileInfo with just enough for icon lookup.
type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

func deviconForName(name string, isDir bool) string {
	if name == "" {
		return ""
	}
	style := devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir})
	return style.Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}

func disclosureIndicator(collapsed, showIcons bool) string {
	if !showIcons {
		if collapsed {
			return ">"
		}
		return "v"
	}
	if collapsed {
		return "▶"
	}
	return "▼"
}
