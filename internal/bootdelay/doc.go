// Package bootdelay writes a systemd drop-in that sleeps before the display
// manager starts, which keeps the splash on screen on fast machines.
package bootdelay
