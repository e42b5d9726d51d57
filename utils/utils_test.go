package utils

import (
	"strings"
	"testing"
)

func TestGeneratePixCodeShape(t *testing.T) {
	code := GeneratePixCode(9.90)

	if !strings.HasPrefix(code, "00020126580014BR.GOV.BCB.PIX") {
		t.Errorf("pix code should carry the BR code prefix, got %q", code)
	}
	if !strings.Contains(code, "9.90") {
		t.Errorf("pix code should embed the amount, got %q", code)
	}
	if !strings.Contains(code, "CentralPalpite") {
		t.Errorf("pix code should carry the merchant name, got %q", code)
	}
}

func TestGeneratePixCodeUnique(t *testing.T) {
	a := GeneratePixCode(19.90)
	b := GeneratePixCode(19.90)
	if a == b {
		t.Error("two pix codes for the same amount should differ")
	}
}
