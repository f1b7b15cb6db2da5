package render_test

import (
	"testing"

	"github.com/goliatone/go-linkfield/pkg/render"
)

func TestHTMLLinkRenderer(t *testing.T) {
	cases := []struct {
		name    string
		options []render.LinkOption
		req     render.LinkRequest
		want    string
	}{
		{
			name: "explicit url and label",
			req:  render.LinkRequest{URL: "/a", Label: "Alpha"},
			want: `<a href="/a">Alpha</a>`,
		},
		{
			name: "uid infers label from last segment",
			req:  render.LinkRequest{UID: "/zport/dmd/Devices/Server/linux/devices/web01"},
			want: `<a href="/zport/dmd/Devices/Server/linux/devices/web01">web01</a>`,
		},
		{
			name: "uid with trailing slash",
			req:  render.LinkRequest{UID: "/zport/dmd/Groups/"},
			want: `<a href="/zport/dmd/Groups/">Groups</a>`,
		},
		{
			name: "bare string",
			req:  render.LinkRequest{UID: "plain-text-id"},
			want: `<a href="plain-text-id">plain-text-id</a>`,
		},
		{
			name: "label keeps inline formatting",
			req:  render.LinkRequest{URL: "/b", Label: "<b>Beta</b>"},
			want: `<a href="/b"><b>Beta</b></a>`,
		},
		{
			name: "label drops unsafe markup",
			req:  render.LinkRequest{URL: "/b", Label: `<img src="x" onerror="alert(1)">Beta`},
			want: `<a href="/b">Beta</a>`,
		},
		{
			name: "unsafe scheme",
			req:  render.LinkRequest{URL: "javascript:alert(1)", Label: "x"},
			want: `<a href="#">x</a>`,
		},
		{
			name: "label only",
			req:  render.LinkRequest{Label: "Orphan"},
			want: `Orphan`,
		},
		{
			name: "nothing",
			req:  render.LinkRequest{},
			want: ``,
		},
		{
			name:    "base url and class",
			options: []render.LinkOption{render.WithBaseURL("https://console.example.com/"), render.WithLinkClass(" z-link  primary ")},
			req:     render.LinkRequest{URL: "/a", Label: "Alpha"},
			want:    `<a href="https://console.example.com/a" class="z-link primary">Alpha</a>`,
		},
		{
			name:    "base url ignores absolute targets",
			options: []render.LinkOption{render.WithBaseURL("https://console.example.com")},
			req:     render.LinkRequest{URL: "https://other.example.com/a", Label: "Alpha"},
			want:    `<a href="https://other.example.com/a">Alpha</a>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			renderer := render.NewHTMLLinkRenderer(tc.options...)
			if got := renderer.RenderLink(tc.req); got != tc.want {
				t.Fatalf("RenderLink(%+v)\n got: %s\nwant: %s", tc.req, got, tc.want)
			}
		})
	}
}

func TestLinkRendererFunc(t *testing.T) {
	var calls int
	fn := render.LinkRendererFunc(func(req render.LinkRequest) string {
		calls++
		return req.UID
	})
	if got := fn.RenderLink(render.LinkRequest{UID: "x"}); got != "x" || calls != 1 {
		t.Fatalf("expected adapter to delegate, got %q after %d calls", got, calls)
	}
}
