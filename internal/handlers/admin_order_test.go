package handlers

import (
	"testing"

	"kazistore/internal/models"
)

func TestComputeOrderStatsExcludesCancelledRevenue(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 100, Status: models.StatusProcessing},
		{TotalAmount: 50, Status: models.StatusCancelled},
	}

	stats := computeOrderStats(orders, nil)
	if stats.Revenue != 100 {
		t.Fatalf("expected revenue 100 excluding cancelled orders, got %v", stats.Revenue)
	}
	if stats.TotalOrders != 2 {
		t.Fatalf("expected totalOrders 2, got %d", stats.TotalOrders)
	}
}

func TestComputeOrderStatsPendingCount(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusPendingVerification},
		{Status: models.StatusPendingVerification},
		{Status: models.StatusShipped},
	}

	stats := computeOrderStats(orders, nil)
	if stats.PendingVerification != 2 {
		t.Fatalf("expected 2 pending verifications, got %d", stats.PendingVerification)
	}
}

func TestComputeOrderStatsManualSales(t *testing.T) {
	sales := []models.ManualSale{{Amount: 20000}, {Amount: 5000}}

	stats := computeOrderStats(nil, sales)
	if stats.ManualSalesTotal != 25000 {
		t.Fatalf("expected manual sales total 25000, got %v", stats.ManualSalesTotal)
	}
	if stats.Revenue != 0 {
		t.Fatalf("manual sales must not leak into order revenue, got %v", stats.Revenue)
	}
}
