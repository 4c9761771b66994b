// Package engine is the entry point to the cipher toolkit. It ties the codec registry,
// the BMO cipher, the detector and activation codes behind one facade.
package engine
