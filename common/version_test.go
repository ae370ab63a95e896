package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	defer func(commit, tag string) { gitCommit, gitTag = commit, tag }(gitCommit, gitTag)

	gitCommit, gitTag = "", ""
	assert.Equal(t, "v"+version+"+unknown", GetVersion().Version)

	gitCommit = "0123456789abcdef"
	assert.Equal(t, "v"+version+"+0123456", GetVersion().Version)

	gitTag = "v1.2.0"
	assert.Equal(t, "v1.2.0", GetVersion().String())
}
