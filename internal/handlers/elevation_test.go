package handlers

import (
	"testing"

	"kazistore/internal/models"
)

func TestCheckElevationWrongPIN(t *testing.T) {
	err := checkElevation(models.RoleCustomer, "0000", "2025")
	if err != errWrongPIN {
		t.Fatalf("expected errWrongPIN for mismatched pin, got %v", err)
	}
}

func TestCheckElevationExactMatch(t *testing.T) {
	if err := checkElevation(models.RoleCustomer, "2025", "2025"); err != nil {
		t.Fatalf("expected elevation to be allowed, got %v", err)
	}
}

func TestCheckElevationEmptyMasterPIN(t *testing.T) {
	// An unset master PIN must never allow elevation, even for empty input.
	if err := checkElevation(models.RoleCustomer, "", ""); err != errWrongPIN {
		t.Fatalf("expected errWrongPIN when master pin is unset, got %v", err)
	}
}

func TestCheckElevationAlreadyAdmin(t *testing.T) {
	if err := checkElevation(models.RoleAdmin, "2025", "2025"); err != errAlreadyAdmin {
		t.Fatalf("expected errAlreadyAdmin, got %v", err)
	}
}
