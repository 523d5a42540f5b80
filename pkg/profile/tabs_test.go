package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabController_StartsOnPersonal(t *testing.T) {
	assert.Equal(t, TabPersonal, NewTabController().Active())
}

func TestTabController_Cycle(t *testing.T) {
	tc := NewTabController()

	assert.Equal(t, TabAddress, tc.Next())
	assert.Equal(t, TabSettings, tc.Next())
	assert.Equal(t, TabPersonal, tc.Next())
	assert.Equal(t, TabSettings, tc.Prev())

	require.NoError(t, tc.Select(TabAddress))
	assert.Equal(t, TabAddress, tc.Active())
}

func TestTabController_SelectRejectsUnknownTab(t *testing.T) {
	tc := NewTabController()
	require.NoError(t, tc.Select(TabSettings))

	err := tc.Select(Tab("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tab")
	assert.Equal(t, TabSettings, tc.Active())

	// Labels resolve to their tab id
	require.NoError(t, tc.Select(Tab("Address")))
	assert.Equal(t, TabAddress, tc.Active())
}

func TestTabLabels(t *testing.T) {
	assert.Equal(t, "Personal Info", TabPersonal.Label())
	assert.Equal(t, "Address", TabAddress.Label())
	assert.Equal(t, "Account Settings", TabSettings.Label())
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		input   string
		want    Tab
		wantErr bool
	}{
		{"personal", TabPersonal, false},
		{"Account Settings", TabSettings, false},
		{"Address", TabAddress, false},
		{"billing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTab(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTab(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabFieldsCoverEditableRecord(t *testing.T) {
	seen := map[string]bool{}
	for _, tab := range Tabs {
		for _, f := range tab.Fields() {
			assert.False(t, seen[f], "field %s rendered on two tabs", f)
			seen[f] = true
		}
	}
	// username and the picture slot are not text inputs
	assert.Len(t, seen, len(AllFields)-2)
}
