package mediatypes

import "testing"

func TestGetKind(t *testing.T) {
	tests := []struct {
		ext  string
		want Kind
	}{
		{".mp3", KindAudio},
		{".flac", KindAudio},
		{".opus", KindAudio},
		{".mkv", KindVideo},
		{".webm", KindVideo},
		{".m3u8", KindPlaylist},
		{".pls", KindPlaylist},
		{".txt", KindOther},
		{"", KindOther},
		{"mp3", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := GetKind(tt.ext); got != tt.want {
				t.Errorf("GetKind(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"/music/a.mp3", KindAudio},
		{"/music/LOUD.FLAC", KindAudio},
		{"/music/%5Blive%5D set.ogg", KindAudio},
		{"/videos/clip.Mp4", KindVideo},
		{"/lists/mix.m3u8", KindPlaylist},
		{"/music/cover.jpg", KindOther},
		{"/music/Subfolder", KindOther},
		{"/music/.hidden", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	counts := Count([]string{"a.mp3", "b.mp3", "c.mkv", "d.m3u", "e", "f.jpg"})

	want := map[Kind]int{KindAudio: 2, KindVideo: 1, KindPlaylist: 1, KindOther: 2}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("counts[%s] = %d, want %d", kind, counts[kind], n)
		}
	}
}

func TestKindsCoverEveryKind(t *testing.T) {
	seen := make(map[Kind]bool)
	for _, k := range Kinds {
		if seen[k] {
			t.Errorf("duplicate kind %q", k)
		}
		seen[k] = true
	}
	for _, k := range []Kind{KindAudio, KindVideo, KindPlaylist, KindOther} {
		if !seen[k] {
			t.Errorf("Kinds is missing %q", k)
		}
	}
}
