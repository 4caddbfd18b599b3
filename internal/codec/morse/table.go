package morse

// Table maps A-Z (0-25) and the digits (26-35) to Morse code.
var Table = [36]string{
	".-", "-...", "-.-.", "-..", ".", "..-.", "--.", "....", "..", ".---",
	"-.-", ".-..", "--", "-.", "---", ".--.", "--.-", ".-.", "...", "-",
	"..-", "...-", ".--", "-..-", "-.--", "--..",
	".----", "..---", "...--", "....-", ".....",
	"-....", "--...", "---..", "----.", "-----",
}

const digitOffset = 26

// symbol returns the character stored at table index i.
func symbol(i int) byte {
	if i < digitOffset {
		return byte('A' + i)
	}
	return byte('0' + i - digitOffset)
}

// lookup returns the table index of code, or -1.
func lookup(code string) int {
	for i, c := range Table {
		if c == code {
			return i
		}
	}
	return -1
}
