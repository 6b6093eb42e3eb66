package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvedKeepsStampedVersion(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "1.2.3"
	v, commit, date := Resolved()
	assert.Equal(t, "1.2.3", v)
	assert.Equal(t, Commit, commit)
	assert.Equal(t, Date, date)
}

func TestResolvedDevBuild(t *testing.T) {
	v, _, _ := Resolved()
	assert.NotEmpty(t, v)
}
