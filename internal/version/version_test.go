package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldCommit, oldTime := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = oldCommit, oldTime })

	GitCommit, BuildTime = "unknown", "unknown"
	assert.Equal(t, "v"+Version, String())

	GitCommit = "abc1234"
	assert.Equal(t, "v"+Version+" (abc1234)", String())

	BuildTime = "2026-10-15T08:00:00Z"
	assert.Equal(t, "v"+Version+" (abc1234, built 2026-10-15T08:00:00Z)", String())
}
