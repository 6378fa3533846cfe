package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewString(t *testing.T) {
	assert.Equal(t, "dashboard", ViewDashboard.String())
	assert.Equal(t, "analytics", ViewAnalytics.String())
	assert.Equal(t, "unknown", View(99).String())
}

func TestAllViewsCoversEveryVariant(t *testing.T) {
	views := AllViews()
	assert.Len(t, views, 6)

	seen := make(map[View]bool)
	for _, v := range views {
		assert.NotEqual(t, "unknown", v.String())
		seen[v] = true
	}
	assert.Len(t, seen, len(views), "no duplicates")
}
