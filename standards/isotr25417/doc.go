// Package isotr25417 provides the reference quantities of
// ISO TR 25417:2007 and the elementary sound pressure level
// definitions built on them.
//
// The reference pressure of 20 micropascals is the conventional
// threshold of hearing in air and is the denominator of every sound
// pressure level in this module.
package isotr25417
