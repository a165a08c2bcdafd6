// Package audio plays the scratching sound of a card being revealed.
//
// Every newly revealed cell triggers a short burst of low-passed noise with a
// fast decay. Bursts are mixed, so a quick stroke sounds continuous. Audio is
// optional: every method is safe to call before Init or after Init failed.
package audio
