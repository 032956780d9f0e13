/*
Copyright © 2025 Ian Shuley

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigFileSecurely(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", ConfigFileName)

	s := Defaults()
	s.Length = 48
	s.Special = false
	require.NoError(t, WriteConfigFileSecurely(path, s, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := NewLoader(path).WithDotEnv("").Load()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	matches, err := filepath.Glob(path + ".tmp.*")
	require.NoError(t, err)
	assert.Empty(t, matches, "temporary file left behind")
}

func TestWriteConfigFileSecurelyRefusesOverwrite(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ConfigFileName)
	writeFile(t, path, "length: 20\n")

	err := WriteConfigFileSecurely(path, Defaults(), false)
	assert.True(t, errors.Is(err, ErrConfigExists))

	require.NoError(t, WriteConfigFileSecurely(path, Defaults(), true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "length: 32")
}

func TestWriteConfigFileSecurelyValidates(t *testing.T) {
	dir := isolate(t)
	s := Defaults()
	s.Output = "xml"

	err := WriteConfigFileSecurely(filepath.Join(dir, ConfigFileName), s, false)
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, ConfigFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAtomicWriteFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, AtomicWriteFile(path, []byte("one"), 0600))
	require.NoError(t, AtomicWriteFile(path, []byte("two"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}
