package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenTransCode(t *testing.T) {
	at := time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
	code := GenTransCode("POS", at)

	parts := strings.Split(code, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "POS", parts[0])
	assert.Equal(t, "20250901", parts[1])
	assert.Len(t, parts[2], 8)

	// dua kode pada waktu sama tetap berbeda
	assert.NotEqual(t, code, GenTransCode("POS", at))
}

func TestGenMemberID(t *testing.T) {
	assert.Equal(t, "MBR-000001", GenMemberID(1))
	assert.Equal(t, "MBR-000123", GenMemberID(123))
	assert.Equal(t, "MBR-1234567", GenMemberID(1234567))
}
