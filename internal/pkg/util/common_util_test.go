package util_test

import (
	"bytes"
	"strings"
	"testing"

	"Hirebase/internal/pkg/util"
)

func TestMaskNick(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ab"},
		{"abc", "a*c"},
		{"jobhunter", "j*******r"},
	}
	for _, c := range cases {
		if got := util.MaskNick(c.in); got != c.want {
			t.Errorf("MaskNick(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSalaryWindow(t *testing.T) {
	lo, hi := util.SalaryWindow(1000)
	if lo != 700 || hi != 1300 {
		t.Errorf("SalaryWindow(1000) = (%d, %d), want (700, 1300)", lo, hi)
	}

	lo, hi = util.SalaryWindow(0)
	if lo != 0 || hi != 0 {
		t.Errorf("SalaryWindow(0) = (%d, %d), want (0, 0)", lo, hi)
	}
}

func TestGetSafeContentType(t *testing.T) {
	pdf := bytes.NewReader([]byte("%PDF-1.7 fake document body"))
	ct, err := util.GetSafeContentType(pdf)
	if err != nil {
		t.Fatalf("GetSafeContentType returned error: %v", err)
	}
	if ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}

	// 嗅探后读取位置须回到开头
	rest := make([]byte, 4)
	if _, err = pdf.Read(rest); err != nil {
		t.Fatalf("read after sniff returned error: %v", err)
	}
	if string(rest) != "%PDF" {
		t.Errorf("reader position not reset, read %q", rest)
	}
}

func TestGetSafeContentTypePlainText(t *testing.T) {
	ct, err := util.GetSafeContentType(strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("GetSafeContentType returned error: %v", err)
	}
	if !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain prefix", ct)
	}
}
