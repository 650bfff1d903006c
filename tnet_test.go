package tnet

import (
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCapabilityFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	SetConfiguration(nil)
	if ShowIDs() || Read32BitIDs() {
		t.Error("expected capability flags to default to false")
	}
	SetFlag(KeyShowIDs, true)
	if !ShowIDs() || Read32BitIDs() {
		t.Error("expected only ShowIDs to be set")
	}
	SetFlag(KeyShowIDs, false)
	if ShowIDs() {
		t.Error("expected ShowIDs to be reset")
	}
	k := koanf.New(".")
	k.Load(confmap.Provider(map[string]interface{}{
		"io": map[string]interface{}{"read32bitids": true},
	}, "."), nil)
	SetConfiguration(k)
	defer SetConfiguration(nil)
	if !Read32BitIDs() {
		t.Errorf("expected %s to be read from configuration", KeyRead32BitIDs)
	}
}
