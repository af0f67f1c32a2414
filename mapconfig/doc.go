// Package mapconfig loads a grid map definition from YAML, giving the
// pack's widely-used config-loading pattern (DangerosoDavo-mmorts,
// avatar29A-midgard-ro, udisondev-la2go all parse YAML into a typed
// struct with gopkg.in/yaml.v3) a concrete home in this module: the
// "build a navmap.Map from a configuration document" boundary concern
// that spec.md's external interfaces leave to the host application.
//
// A Document describes a map's dimensions, its obstacle list, and
// optional named start/end markers; ToMap converts it into the inputs
// navmap.New expects.
package mapconfig
