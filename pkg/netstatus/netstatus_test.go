package netstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		host string
		fam  Family
		want string
	}{
		{"ipv4 literal", "192.168.1.10", FamilyIPv4, "http://192.168.1.10/"},
		{"hostname", "dreambox.local", FamilyIPv4, "http://dreambox.local/"},
		{"ipv6 literal", "2001:db8::1", FamilyIPv6, "http://[2001:db8::1]/"},
		{"ipv6 with reverse name", "box.example.org", FamilyIPv6, "http://box.example.org/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URL(tt.host, tt.fam))
		})
	}
}

func TestBlacklisted(t *testing.T) {
	assert.True(t, blacklisted("localhost"))
	assert.False(t, blacklisted("localhost.localdomain"))
	assert.False(t, blacklisted("box"))
}

func TestLookup_DoesNotPanic(t *testing.T) {
	// The result depends on the host; only the invariants are checked.
	host, fam := Lookup()
	if fam == FamilyNone {
		assert.Empty(t, host)
	} else {
		assert.NotEmpty(t, host)
		assert.NotEqual(t, "localhost", host)
	}
}
