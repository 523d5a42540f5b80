package tui

import "runtime"

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	switch GetOS() {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches accepts both the OS-specific key and the default one
func (s ShortcutKey) Matches(key string) bool {
	return key == s.Get() || key == s.Default
}

// Help renders the key for help text, e.g. "^s"
func (s ShortcutKey) Help() string {
	k := s.Get()
	if len(k) > 5 && k[:5] == "ctrl+" {
		return "^" + k[5:]
	}
	return k
}

// Shortcuts used by the profile editor
var Shortcuts = struct {
	Submit        ShortcutKey
	NextTab       ShortcutKey
	PrevTab       ShortcutKey
	NextField     ShortcutKey
	PrevField     ShortcutKey
	Picture       ShortcutKey
	RemovePicture ShortcutKey
	CopyPicture   ShortcutKey
	Logout        ShortcutKey
	DeleteAccount ShortcutKey
	Cancel        ShortcutKey
	Quit          ShortcutKey
}{
	Submit: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	NextTab: ShortcutKey{
		Default: "ctrl+n",
	},
	PrevTab: ShortcutKey{
		Default: "ctrl+p",
	},
	NextField: ShortcutKey{
		Default: "tab",
	},
	PrevField: ShortcutKey{
		Windows: "backtab",
		Default: "shift+tab",
	},
	Picture: ShortcutKey{
		Default: "ctrl+o",
	},
	RemovePicture: ShortcutKey{
		Mac:     "ctrl+r",
		Linux:   "alt+r", // Avoid reverse-search muscle memory
		Windows: "alt+r",
		Default: "ctrl+r",
	},
	CopyPicture: ShortcutKey{
		Default: "ctrl+y",
	},
	Logout: ShortcutKey{
		Mac:     "ctrl+l",
		Linux:   "alt+l", // Avoid clear screen
		Windows: "alt+l",
		Default: "ctrl+l",
	},
	DeleteAccount: ShortcutKey{
		Mac:     "ctrl+d",
		Linux:   "alt+d", // Avoid Ctrl+D EOF signal
		Windows: "alt+d",
		Default: "ctrl+d",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
}
