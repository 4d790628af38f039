// utils/trans_code.go
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenTransCode membuat kode transaksi unik, e.g. POS-20250901-a1b2c3d4.
func GenTransCode(prefix string, t time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%s-%s", prefix, t.Format("20060102"), suffix)
}

// GenMemberID membuat nomor anggota dari sequence, e.g. MBR-000123.
func GenMemberID(seq int64) string {
	return fmt.Sprintf("MBR-%06d", seq)
}
