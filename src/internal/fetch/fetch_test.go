package fetch

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		flag     Flag
		wantCurl []string
		wantWget []string
	}{
		{
			name:     "silent",
			flag:     Silent(),
			wantCurl: []string{"-s"},
			wantWget: []string{"-q"},
		},
		{
			name:     "progress bar",
			flag:     ProgressBar(),
			wantCurl: []string{"--progress-bar"},
			wantWget: []string{"--progress=bar"},
		},
		{
			name:     "follow redirects",
			flag:     FollowRedirects(),
			wantCurl: []string{"-L"},
			wantWget: nil, // wget follows redirects by default
		},
		{
			name:     "header only",
			flag:     HeaderOnly(),
			wantCurl: []string{"-I"},
			wantWget: []string{"--server-response"},
		},
		{
			name:     "output file",
			flag:     OutputFile("/tmp/nvm.sh"),
			wantCurl: []string{"-o", "/tmp/nvm.sh"},
			wantWget: []string{"-O", "/tmp/nvm.sh"},
		},
		{
			name:     "resume from offset",
			flag:     ResumeFromOffset(),
			wantCurl: []string{"-C", "-"},
			wantWget: []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(Curl, tt.flag); !reflect.DeepEqual(got, tt.wantCurl) {
				t.Errorf("translate(Curl, %s) = %v, want %v", tt.name, got, tt.wantCurl)
			}
			if got := translate(Wget, tt.flag); !reflect.DeepEqual(got, tt.wantWget) {
				t.Errorf("translate(Wget, %s) = %v, want %v", tt.name, got, tt.wantWget)
			}
		})
	}
}

func TestArgs(t *testing.T) {
	url := "https://example.com/nvm.sh"

	curl := NewClient(Curl, "/usr/bin/curl")
	got := curl.Args(url, Silent(), FollowRedirects(), OutputFile("/tmp/out"))
	want := []string{"-s", "-L", "-o", "/tmp/out", url}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("curl Args() = %v, want %v", got, want)
	}

	wget := NewClient(Wget, "/usr/bin/wget")
	got = wget.Args(url, Silent(), FollowRedirects(), OutputFile("/tmp/out"))
	want = []string{"-q", "-O", "/tmp/out", url}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wget Args() = %v, want %v", got, want)
	}

	// URL is always the final argument
	if got := curl.Args(url); !reflect.DeepEqual(got, []string{url}) {
		t.Errorf("Args() with no flags = %v, want just the URL", got)
	}
}

func TestDetectPrefersCurl(t *testing.T) {
	defer func() { lookPath = realLookPath }()

	lookPath = func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	}

	client, err := Detect()
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if client.Tool() != Curl {
		t.Errorf("Detect() chose %s, want curl when both exist", client.Tool())
	}
}

func TestDetectFallsBackToWget(t *testing.T) {
	defer func() { lookPath = realLookPath }()

	lookPath = func(name string) (string, error) {
		if name == "wget" {
			return "/usr/bin/wget", nil
		}
		return "", errors.New("not found")
	}

	client, err := Detect()
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if client.Tool() != Wget {
		t.Errorf("Detect() chose %s, want wget when curl is missing", client.Tool())
	}
}

func TestDetectNoClient(t *testing.T) {
	defer func() { lookPath = realLookPath }()

	lookPath = func(name string) (string, error) {
		return "", errors.New("not found")
	}

	if _, err := Detect(); err == nil {
		t.Error("Detect() = nil error, want error when no client exists")
	}
}

func TestDownloadRunsClient(t *testing.T) {
	client := NewClient(Curl, "/usr/bin/curl")

	var gotName string
	var gotArgs []string
	client.runCmd = func(name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return nil, nil
	}

	if err := client.Download("https://example.com/f", "/tmp/f", Silent()); err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	if gotName != "/usr/bin/curl" {
		t.Errorf("Download() invoked %q, want /usr/bin/curl", gotName)
	}
	want := []string{"-s", "-o", "/tmp/f", "https://example.com/f"}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Errorf("Download() args = %v, want %v", gotArgs, want)
	}
}

func TestDownloadReportsFailure(t *testing.T) {
	client := NewClient(Wget, "/usr/bin/wget")
	client.runCmd = func(name string, args ...string) ([]byte, error) {
		return []byte("404 Not Found"), fmt.Errorf("exit status 8")
	}

	err := client.Download("https://example.com/missing", "/tmp/f")
	if err == nil {
		t.Fatal("Download() = nil error, want failure")
	}
}

// realLookPath preserves the package default for restoration in tests
var realLookPath = lookPath
