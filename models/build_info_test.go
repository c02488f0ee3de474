package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("v1.2.0", " ", "")

	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, NotAvailable, info.Date)
	assert.Equal(t, NotAvailable, info.Commit)
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: N/A", info.String())
}
