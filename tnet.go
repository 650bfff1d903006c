// Package tnet holds process-wide settings for the tensor network index core.
//
// Sub-packages implement identity generation (index/idgen), name patterns
// (index/namepat), tensor indices (index) and ordered index collections (indexset).
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package tnet

import (
	"io"
	"os"
	"sync"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
)

// Configuration keys for global capability flags.
const (
	KeyShowIDs      = "index.showids"   // display a fragment of an index' ID
	KeyRead32BitIDs = "io.read32bitids" // read legacy 32-bit index IDs
)

var konfMutex sync.RWMutex

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// SetConfiguration pushes a configuration to app-global scope.
func SetConfiguration(k *koanf.Koanf) {
	konfMutex.Lock()
	defer konfMutex.Unlock()
	Configuration = k
}

// ShowIDs is a predicate: should diagnostic output of indices include
// a fragment of their IDs?
func ShowIDs() bool {
	return flag(KeyShowIDs)
}

// Read32BitIDs is a predicate: are serialized indices to be read with
// legacy 32-bit IDs?
func Read32BitIDs() bool {
	return flag(KeyRead32BitIDs)
}

// SetFlag sets a boolean capability flag. If no configuration is present yet,
// an empty one will be created.
func SetFlag(key string, on bool) {
	konfMutex.Lock()
	defer konfMutex.Unlock()
	if Configuration == nil {
		Configuration = koanf.New(".")
	}
	Configuration.Load(confmap.Provider(map[string]interface{}{key: on}, "."), nil)
}

func flag(key string) bool {
	konfMutex.RLock()
	defer konfMutex.RUnlock()
	if Configuration == nil {
		return false
	}
	return Configuration.Bool(key)
}
