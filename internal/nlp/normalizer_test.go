package nlp

import "testing"

func TestNormalize_StripsTagsDigitsPunctuationAndURLs(t *testing.T) {
	in := "<p>Belajar   Backend 101!</p> Kunjungi www.contoh.com sekarang"
	got := Normalize(in)
	want := "belajar backend kunjungi wwwcontohcom"
	if got != want {
		t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
	}
}

func TestNormalize_RemovesStopwords(t *testing.T) {
	got := Normalize("kelas ini adalah tentang pemrograman dan basis data")
	want := "kelas pemrograman basis data"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"<div>Backend Developer 2024: belajar Go, SQL &amp; Docker! http://x.y/z</div>",
		"python dan machine learning untuk pemula",
	}
	for _, c := range cases {
		once := Normalize(c)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", c, once, twice)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := Normalize("123 456 ..."); got != "" {
		t.Fatalf("expected empty after cleaning, got %q", got)
	}
}
