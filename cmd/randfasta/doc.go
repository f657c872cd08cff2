// 14 Oct 2026

/*
Randfasta makes a random DNA sequence and writes it to a fasta file.

Usage:
	randfasta

There are no flags. The program asks for four things, in this order
	sequence length
	sequence ID
	a description
	your name
The sequence is made from A, C, G and T using the operating system's
cryptographic random number generator. Your name is put into the
sequence at a random position. It is written to a file called ID.fasta
in the current directory, as a comment line ">ID description" and
the sequence on a single line. An old file of the same name is overwritten.

The percentages of each base and the %CG are then printed. They are
calculated from the sequence before the name was put in.

A length of zero (or less) is an error, since there is nothing to take
a percentage of. So is a length that is not an integer. Errors are printed
and the exit status is non-zero.
*/
package main
