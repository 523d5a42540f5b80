package profile

import "fmt"

// Tab is one section of the profile editor
type Tab string

const (
	TabPersonal Tab = "personal"
	TabAddress  Tab = "address"
	TabSettings Tab = "settings"
)

// Tabs in display order
var Tabs = []Tab{TabPersonal, TabAddress, TabSettings}

// Label returns the tab's display label
func (t Tab) Label() string {
	switch t {
	case TabPersonal:
		return "Personal Info"
	case TabAddress:
		return "Address"
	case TabSettings:
		return "Account Settings"
	}
	return string(t)
}

// Fields returns the form fields rendered on the tab
func (t Tab) Fields() []string {
	switch t {
	case TabPersonal:
		return []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone}
	case TabAddress:
		return []string{FieldAddressLine1, FieldAddressLine2, FieldCity, FieldState, FieldZipCode}
	case TabSettings:
		return []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmPassword}
	}
	return nil
}

// ParseTab accepts a tab id or its label
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if s == string(t) || s == t.Label() {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q (must be: personal, address, or settings)", s)
}

// TabController tracks the active tab. Switching never touches form data.
type TabController struct {
	active Tab
}

// NewTabController starts on the personal tab
func NewTabController() *TabController {
	return &TabController{active: TabPersonal}
}

// Active returns the active tab
func (tc *TabController) Active() Tab {
	return tc.active
}

// Select moves to t. Tabs outside Tabs are rejected and leave the active
// tab unchanged.
func (tc *TabController) Select(t Tab) error {
	parsed, err := ParseTab(string(t))
	if err != nil {
		return err
	}
	tc.active = parsed
	return nil
}

// Next moves to the following tab, wrapping around
func (tc *TabController) Next() Tab {
	tc.active = Tabs[(tc.index()+1)%len(Tabs)]
	return tc.active
}

// Prev moves to the previous tab, wrapping around
func (tc *TabController) Prev() Tab {
	tc.active = Tabs[(tc.index()+len(Tabs)-1)%len(Tabs)]
	return tc.active
}

func (tc *TabController) index() int {
	for i, t := range Tabs {
		if t == tc.active {
			return i
		}
	}
	return 0
}
