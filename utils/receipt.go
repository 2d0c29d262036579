package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenReceiptNo builds a receipt number like POS-20250901-1A2B3C4D.
// The random suffix keeps numbers unique without a counter table.
func GenReceiptNo(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("POS-%s-%s", t.Format("20060102"), suffix)
}
