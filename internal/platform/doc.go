// Package platform maps operating systems onto their per-user autostart
// mechanism.
//
// Each supported platform is described by a Profile: the autostart directory
// under the user's home, the startup file extension and format, the comment
// syntax used to embed the original command, and the tool that reveals the
// directory in the native file manager. Profiles live in a single lookup
// table so platform differences stay data, not scattered conditionals, and
// so every profile can be exercised in tests regardless of the host.
package platform
