package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"Hello World", "hello-world"},
		{"Next.js", "next-js"},
		{"next js", "next-js"},
		{"Go & Rust", "go-rust"},
		{"  spaced  out  ", "spaced-out"},
		{"UPPER-case", "upper-case"},
		{"--already--slugged--", "already-slugged"},
		{"caf\u00e9 au lait", "caf-au-lait"},   // precomposed é is dropped like any other non-ascii rune
		{"cafe\u0301 au lait", "cafe-au-lait"}, // decomposed form keeps the ascii e
		{"100%", "100"},
		{"...", ""},
		{"", ""},
		{"日本語", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World", "Next.js", "already-a-slug", "Go & Rust!!", "", "___", "A--B",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify not idempotent for %q", in)
	}
}

func TestSlugifyOutputAlphabet(t *testing.T) {
	inputs := []string{"Hello, World!", "foo_bar baz", "A&B&C", "-x-", "tag  name"}
	for _, in := range inputs {
		out := Slugify(in)
		for _, r := range out {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "unexpected rune %q in Slugify(%q) = %q", r, in, out)
		}
		assert.NotContains(t, out, "--", "doubled hyphen in %q", out)
		if out != "" {
			assert.NotEqual(t, byte('-'), out[0])
			assert.NotEqual(t, byte('-'), out[len(out)-1])
		}
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("hello-world-123"))
	assert.True(t, ValidSlug("a"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("Hello"))
	assert.False(t, ValidSlug("hello world"))
	assert.False(t, ValidSlug("héllo"))
	assert.False(t, ValidSlug("hello_world"))
}
