// Package activate makes an installed theme the default boot splash by
// registering it with update-alternatives and regenerating the initramfs.
package activate
