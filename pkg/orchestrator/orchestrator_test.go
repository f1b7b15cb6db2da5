package orchestrator_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/orchestrator"
	"github.com/goliatone/go-linkfield/pkg/render"
	"github.com/goliatone/go-linkfield/pkg/renderers/vanilla"
)

type textRenderer struct{}

func (textRenderer) Name() string        { return "text" }
func (textRenderer) ContentType() string { return "text/plain" }
func (textRenderer) Render(_ context.Context, panel model.Panel) ([]byte, error) {
	return []byte("fields=" + panel.Fields[0].Name), nil
}

func panelFS() fstest.MapFS {
	return fstest.MapFS{
		"panels/device.yaml": {Data: []byte(`
panels:
  device:
    locale: es
    fields:
      - name: owner
        label: Owner
      - name: deviceClass
        value: {uid: /zport/dmd/Devices/Server, name: Server}
translations:
  es:
    None: Ninguno
`)},
	}
}

func TestGenerateFromConfiguredPanel(t *testing.T) {
	gen := orchestrator.New(
		orchestrator.WithUISchemaFS(panelFS()),
		orchestrator.WithVanillaOptions(vanilla.WithLinkRenderer(render.NewHTMLLinkRenderer(render.WithBaseURL("https://zenoss.example.com")))),
	)

	ids, err := gen.Panels()
	if err != nil {
		t.Fatalf("panels: %v", err)
	}
	if diff := cmp.Diff([]string{"device"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	output, err := gen.Generate(context.Background(), orchestrator.Request{PanelID: "device"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	for _, want := range []string{
		"Ninguno",
		`<a href="https://zenoss.example.com/zport/dmd/Devices/Server">Server</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestGenerateInlinePanelWithCustomRenderer(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(textRenderer{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	gen := orchestrator.New(orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer("text"))

	panel := model.Panel{Fields: []model.Field{{Name: "inline"}}}
	output, err := gen.Generate(context.Background(), orchestrator.Request{Panel: &panel})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(output) != "fields=inline" {
		t.Fatalf("unexpected output %q", output)
	}
	if !registry.Has("vanilla") {
		t.Fatalf("expected vanilla renderer to be registered alongside custom renderers")
	}
}

func TestGenerateErrors(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithUISchemaFS(panelFS()))

	if _, err := gen.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error without panel")
	}
	if _, err := gen.Generate(context.Background(), orchestrator.Request{PanelID: "missing"}); err == nil {
		t.Fatalf("expected error for unknown panel")
	}
	if _, err := gen.Generate(context.Background(), orchestrator.Request{PanelID: "device", Renderer: "preact"}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}

	broken := orchestrator.New(orchestrator.WithUISchemaFS(fstest.MapFS{"bad.yaml": {Data: []byte("panels: [\n")}}))
	if _, err := broken.Generate(context.Background(), orchestrator.Request{PanelID: "x"}); err == nil {
		t.Fatalf("expected load error")
	}
	if _, err := broken.Panels(); err == nil {
		t.Fatalf("expected load error to be sticky")
	}
}
