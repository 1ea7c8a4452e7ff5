package handlers

import "testing"

func TestOptimizeImageInjectsTransforms(t *testing.T) {
	url := "https://res.cloudinary.com/kazi-retail/image/upload/v1/products/knit.jpg"
	got := OptimizeImage(url, 800)
	want := "https://res.cloudinary.com/kazi-retail/image/upload/f_auto,q_auto,w_800/v1/products/knit.jpg"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestOptimizeImagePassthroughForOtherHosts(t *testing.T) {
	url := "https://images.unsplash.com/photo-123?w=800"
	if got := OptimizeImage(url, 400); got != url {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
