package design

import (
	"strings"
	"testing"
)

func sampleConfig() Config {
	return Config{
		ID:                 "sample",
		Name:               "Sample",
		Category:           "minimal",
		BackgroundColor:    "#101820",
		BackgroundColor2:   "#202830",
		Gradient:           true,
		GradientAngle:      135,
		GradientColor2:     "#3b82f6",
		AccentColor:        "#a855f7",
		TextColor:          "#ffffff",
		BorderRadius:       12,
		BorderWidth:        2,
		BorderColor:        "#374151",
		GlobalOpacity:      1,
		AnimationID:        "fadeIn",
		AnimationDuration:  1,
		AnimationDelay:     0,
		ParticleID:         "sparkles",
		ParticleColor:      "#ffffff",
		ParticleCount:      30,
		BackgroundEffectID: "dotGrid",
		Layers: []Layer{
			{Text: "Jane Doe", FontID: "inter-bold", FontSize: 56, Color: "#ffffff", Opacity: 1, PositionY: 120, AnimationID: "fadeIn", AnimationDuration: 1, AnimationEasing: "ease-out"},
			{Text: "Engineer", FontID: "fira-code", FontSize: 24, Color: "#a0aec0", Opacity: 0.8, PositionY: 220, GlowEnabled: true, GlowSize: 8, GlowColor: "#3b82f6"},
		},
	}
}

func TestDeriveChangesOnlyPatchedFields(t *testing.T) {
	base := sampleConfig()

	got := Derive(base, ConfigPatch{
		BackgroundColor: Set("#000000"),
		Gradient:        Set(false),
	})

	want := sampleConfig()
	want.BackgroundColor = "#000000"
	want.Gradient = false
	if !got.Equal(want) {
		t.Errorf("Derive() = %+v, want %+v", got, want)
	}
	if !base.Equal(sampleConfig()) {
		t.Error("Derive() mutated its base")
	}
}

func TestDeriveEmptyPatchIsCopy(t *testing.T) {
	base := sampleConfig()
	got := Derive(base, ConfigPatch{})
	if !got.Equal(base) {
		t.Errorf("Derive(empty) = %+v, want %+v", got, base)
	}
	got.Layers[0].Text = "changed"
	if base.Layers[0].Text != "Jane Doe" {
		t.Error("Derive() result aliases base layers")
	}
}

func TestDeriveReplacesLayers(t *testing.T) {
	layers := []Layer{{Text: "only", FontID: "inter", FontSize: 20, Color: "#fff", Opacity: 1}}
	got := Derive(sampleConfig(), ConfigPatch{Layers: layers})
	if len(got.Layers) != 1 || got.Layers[0].Text != "only" {
		t.Fatalf("Layers = %+v", got.Layers)
	}
	layers[0].Text = "mutated"
	if got.Layers[0].Text != "only" {
		t.Error("Derive() kept a reference to the patch slice")
	}
}

func TestDeriveLayer(t *testing.T) {
	base := sampleConfig()

	got := DeriveLayer(base, 1, LayerPatch{
		Text:     Set("Staff Engineer"),
		FontSize: Set(28.0),
	})

	if got.Layers[1].Text != "Staff Engineer" || got.Layers[1].FontSize != 28 {
		t.Errorf("layer 1 = %+v", got.Layers[1])
	}
	if got.Layers[0] != base.Layers[0] {
		t.Errorf("sibling layer changed: %+v", got.Layers[0])
	}
	want := sampleConfig()
	want.Layers[1].Text = "Staff Engineer"
	want.Layers[1].FontSize = 28
	if !got.Equal(want) {
		t.Errorf("DeriveLayer() = %+v, want %+v", got, want)
	}
	if base.Layers[1].Text != "Engineer" {
		t.Error("DeriveLayer() mutated its base")
	}
}

func TestDeriveLayerOutOfRange(t *testing.T) {
	base := sampleConfig()
	for _, idx := range []int{-1, 2, 99} {
		got := DeriveLayer(base, idx, LayerPatch{Text: Set("x")})
		if !got.Equal(base) {
			t.Errorf("DeriveLayer(%d) changed the config", idx)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "sample", cfg: sampleConfig()},
		{name: "fractional", cfg: Derive(sampleConfig(), ConfigPatch{
			AnimationDuration: Set(1.7342),
			GradientAngle:     Set(-33.5),
		})},
		{name: "unicode text", cfg: DeriveLayer(sampleConfig(), 0, LayerPatch{Text: Set("héllo ✦ \"quoted\"")})},
		{name: "empty text", cfg: DeriveLayer(sampleConfig(), 0, LayerPatch{Text: Set("")})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Marshal(tt.cfg)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			got, err := Unmarshal(text)
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !got.Equal(tt.cfg) {
				t.Errorf("round-trip = %+v, want %+v", got, tt.cfg)
			}
		})
	}
}

func TestMarshalUsesStableKeys(t *testing.T) {
	text, err := Marshal(sampleConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"backgroundColor"`, `"canvasBorderRadius"`, `"layers"`, `"animationEasing"`} {
		if !strings.Contains(text, key) {
			t.Errorf("Marshal() output missing %s", key)
		}
	}
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "truncated", text: `{"id":"x","layers":[`},
		{name: "wrong type", text: `[1,2,3]`},
		{name: "no layers", text: `{"id":"x","name":"y"}`},
		{name: "empty layers", text: `{"id":"x","layers":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.text)
			if err == nil {
				t.Fatal("Unmarshal() error = nil, want error")
			}
			if !IsDecodeError(err) {
				t.Errorf("Unmarshal() error = %T, want *DecodeError", err)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := sampleConfig()
	d := c.Clone()
	d.Layers[0].Color = "#000"
	if c.Layers[0].Color == "#000" {
		t.Error("Clone() shares layer storage")
	}
}

func TestLayerLookup(t *testing.T) {
	c := sampleConfig()
	if _, ok := c.Layer(2); ok {
		t.Error("Layer(2) ok = true on a two layer config")
	}
	if l, ok := c.Layer(0); !ok || l.Text != "Jane Doe" {
		t.Errorf("Layer(0) = %+v, %v", l, ok)
	}
}

func TestUnmarshalOntoKeepsAbsentFields(t *testing.T) {
	base := sampleConfig()
	got, err := UnmarshalOnto(base, `{"name":"mine","layers":[{"text":"x"},{"fontSize":30},{"text":"third"}]}`)
	if err != nil {
		t.Fatalf("UnmarshalOnto() error = %v", err)
	}

	if got.Name != "mine" || got.ID != base.ID || got.BackgroundColor != base.BackgroundColor || got.ParticleCount != base.ParticleCount {
		t.Errorf("canvas fields not merged: %+v", got)
	}
	if len(got.Layers) != 3 {
		t.Fatalf("len(Layers) = %d, want 3", len(got.Layers))
	}

	want0 := base.Layers[0]
	want0.Text = "x"
	if got.Layers[0] != want0 {
		t.Errorf("Layers[0] = %+v, want %+v", got.Layers[0], want0)
	}
	want1 := base.Layers[1]
	want1.FontSize = 30
	if got.Layers[1] != want1 {
		t.Errorf("Layers[1] = %+v, want %+v", got.Layers[1], want1)
	}
	want2 := base.Layers[1]
	want2.Text = "third"
	if got.Layers[2] != want2 {
		t.Errorf("extra layer = %+v, want %+v", got.Layers[2], want2)
	}

	if !base.Equal(sampleConfig()) {
		t.Error("UnmarshalOnto() modified base")
	}
}

func TestUnmarshalOntoRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "truncated", text: `{"layers":[{"text":`},
		{name: "no layers", text: `{"name":"y"}`},
		{name: "null layers", text: `{"layers":null}`},
		{name: "layer not an object", text: `{"layers":[1]}`},
		{name: "wrong field type", text: `{"layers":[{"fontSize":"big"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalOnto(sampleConfig(), tt.text)
			if !IsDecodeError(err) {
				t.Errorf("UnmarshalOnto() error = %v, want *DecodeError", err)
			}
		})
	}
}
