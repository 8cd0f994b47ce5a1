package storage_test

import (
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"contract.pdf", "contract.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\docs\Bylaws 2024.pdf`, "Bylaws_2024.pdf"},
		{"...", "file"},
		{"", "file"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.SanitizeFileName(tt.in))
		})
	}
}

func TestObjectPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	p := storage.ObjectPath("/documents/", now, "MOU final.pdf")

	assert.True(t, strings.HasPrefix(p, "documents/2024/03/"), p)
	assert.True(t, strings.HasSuffix(p, "-MOU_final.pdf"), p)
	assert.NotEqual(t, p, storage.ObjectPath("documents", now, "MOU final.pdf"))
}
