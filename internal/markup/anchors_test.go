package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractAnchors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Anchor
	}{
		{
			name: "two anchors with surrounding text",
			in:   "before <a href='/a'>Alpha</a> middle <span>x</span><a href=\"/b\">Beta</a> after",
			want: []Anchor{
				{Href: "/a", HasHref: true, Inner: "Alpha"},
				{Href: "/b", HasHref: true, Inner: "Beta"},
			},
		},
		{
			name: "nested inside other markup",
			in:   `<ul><li><a href="/x"><b>Bold</b> text</a></li><li><a href="/y">Y</a></li></ul>`,
			want: []Anchor{
				{Href: "/x", HasHref: true, Inner: "<b>Bold</b> text"},
				{Href: "/y", HasHref: true, Inner: "Y"},
			},
		},
		{
			name: "anchor without href",
			in:   `<a name="top">Top</a>`,
			want: []Anchor{{Inner: "Top"}},
		},
		{
			name: "plain text",
			in:   "plain-text-id",
			want: nil,
		},
		{
			name: "unclosed markup",
			in:   "<div><p>broken",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractAnchors(tc.in)
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("anchors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContainerReleaseDetachesNodes(t *testing.T) {
	c := acquire()
	c.root.AppendChild(acquire().root)
	c.buf.WriteString("scratch")

	c.release()

	if c.root.FirstChild != nil {
		t.Fatalf("expected container children to be detached")
	}
	if c.buf != nil {
		t.Fatalf("expected buffer to be returned to the pool")
	}
	c.release()
}
