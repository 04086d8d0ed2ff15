package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winkit/internal/version"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	v := version.GetVersion()
	assert.NotEmpty(t, v, "Version should not be empty")
}

func TestVersionFormat(t *testing.T) {
	t.Parallel()

	// Ensure version follows semantic versioning pattern
	v := version.GetVersion()
	if v != "dev" {
		assert.Regexp(t, `^v?\d+\.\d+\.\d+`, v, "Version should match semver pattern")
	}
}

func TestGetFullVersionFormat(t *testing.T) {
	t.Parallel()

	full := version.GetFullVersion()
	expected := version.GetVersion() + " (commit: " + version.GetCommit() + ", built: " + version.GetDate() + ")"
	assert.Equal(t, expected, full)
}
