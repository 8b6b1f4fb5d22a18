package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"java", []string{"java"}},
		{"java, spring ,web", []string{"java", "spring", "web"}},
		{" ,java,, ,go,", []string{"java", "go"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.in), "Split(%q)", tt.in)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "java,spring", Join([]string{" java", "", "spring "}))
}

func TestJoinSplitPreservesOrder(t *testing.T) {
	in := []string{"zeta", "alpha", "mid"}
	assert.Equal(t, in, Split(Join(in)))
}
