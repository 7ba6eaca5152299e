// Package entries manages the startup files that make user commands run at
// login.
//
// A Store is bound to one autostart directory and one platform profile. It
// owns the whole lifecycle: deriving an id from a command's first token,
// probing for a free filename when ids collide, rendering and writing the
// platform's startup file format, recovering commands from the marker line
// when listing, and deleting files by id. The filesystem is the only state;
// there is no index to fall out of sync with.
package entries
