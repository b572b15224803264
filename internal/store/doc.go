// Package store reads and writes EmulationStation system lists.
//
// A system list is an XML document with a systemList root and one system
// element per emulated platform:
//
//	<?xml version="1.0"?>
//	<systemList>
//	  <system>
//	    <fullname>Super Nintendo</fullname>
//	    <name>snes</name>
//	    <path>/roms/snes</path>
//	    <extension>.sfc .smc</extension>
//	    <command>retroarch %ROM%</command>
//	    <platform>snes</platform>
//	    <theme>snes</theme>
//	  </system>
//	</systemList>
//
// # Session Lifecycle
//
// A Store is a single-use, single-threaded session: Load once, mutate with
// Upsert and Remove, then Save. Save does not change the in-memory state, so
// the store may be mutated and saved again.
//
// # Entity Passes
//
// EmulationStation writes raw "&&" and '"' into text nodes, which strict XML
// rejects. ToXML runs over the file text before parsing and FromXML runs
// over the rendered text before writing. The written file is therefore not
// strictly valid XML for those substrings.
//
// # Backups
//
// Save renames an existing target to a BAK sibling (systems.xml becomes
// systemsBAK.xml) before writing. Only one backup is kept. The rename and
// the write are separate filesystem operations and are not atomic.
//
// All filesystem access goes through an afero.Fs so tests can run against
// an in-memory filesystem.
package store
