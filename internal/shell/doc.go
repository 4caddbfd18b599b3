// Package shell runs the interactive conversion loop.
//
// Each round reads a line of text (the literal "exit" ends the loop), asks
// for a converter by number (1=Morse, 2=Binary, 3=Caesar), asks for a key when
// Caesar is chosen, offers to record the conversion, prints the output and,
// after a Binary conversion, offers to add another binary string to it. A
// border animation closes every round.
//
// History is flushed once when the loop ends, whether by "exit" or end of input.
package shell
