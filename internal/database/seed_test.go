package database

import (
	"testing"

	"kazistore/internal/models"
)

func TestProductsOrSeedFallsBackWhenEmpty(t *testing.T) {
	products := productsOrSeed(nil)
	if len(products) == 0 {
		t.Fatal("expected seed products for an empty remote collection")
	}
}

func TestProductsOrSeedPrefersRemoteData(t *testing.T) {
	remote := []models.Product{{Name: "Remote Only"}}
	products := productsOrSeed(remote)

	if len(products) != 1 || products[0].Name != "Remote Only" {
		t.Fatalf("expected remote products untouched, got %+v", products)
	}
}

func TestSeedCategoriesHaveSlugs(t *testing.T) {
	for _, c := range SeedCategories() {
		if c.Slug == "" {
			t.Fatalf("seed category %q is missing a slug", c.Name)
		}
	}
}

func TestSeedVariantsHaveStableIDs(t *testing.T) {
	for _, p := range SeedProducts() {
		if len(p.Variants) == 0 {
			t.Fatalf("seed product %q has no variants", p.Name)
		}
		for _, v := range p.Variants {
			if v.ID == "" || v.SKU == "" {
				t.Fatalf("seed product %q has a variant without id/sku", p.Name)
			}
		}
	}
}

func TestPromotionsOrSeedFallsBackWhenEmpty(t *testing.T) {
	promos := promotionsOrSeed(nil)
	if len(promos) == 0 {
		t.Fatal("expected seed promotions for an empty remote collection")
	}
	if promos[0].Code != "WELCOME24" {
		t.Fatalf("unexpected seed promotion code %q", promos[0].Code)
	}
}
