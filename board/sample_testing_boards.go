package board

// This file contains some sample positions, used solely for testing.

// TestPosition is a plaintext diagram of a position.
type TestPosition string

const (
	// OpenFour is four first stones in an open row, H8 area. Either end wins.
	OpenFour TestPosition = `
   A B C D E F G H I J K L M N O 
   ------------------------------
 1|. . . . . . . . . . . . . . .|
 2|. . . . . . . . . . . . . . .|
 3|. . O . . . . . . . . . O . .|
 4|. . . . . . . . . . . . . . .|
 5|. . . . . . . . . . . . . . .|
 6|. . . . . . . . . . . . . . .|
 7|. . . . . . . . . . . . . . .|
 8|. . . . . X X X X . . . . . .|
 9|. . . . . . . . . . . . . . .|
10|. . . . . . . . . . . . . . .|
11|. . . . . . . . . . . . . . .|
12|. . . . . . . . . . . . . . .|
13|. . O . . . . . . . . . O . .|
14|. . . . . . . . . . . . . . .|
15|. . . . . . . . . . . . . . .|
   ------------------------------
`
	// OpenTwo is an open two for first and two isolated second stones.
	OpenTwo TestPosition = `
   A B C D E F G H I J K L M N O 
   ------------------------------
 1|. . . . . . . . . . . . . . .|
 2|. . . . . . . . . . . . . . .|
 3|. . O . . . . . . . . . O . .|
 4|. . . . . . . . . . . . . . .|
 5|. . . . . . . . . . . . . . .|
 6|. . . . . . . . . . . . . . .|
 7|. . . . . . . . . . . . . . .|
 8|. . . . . . X X . . . . . . .|
 9|. . . . . . . . . . . . . . .|
10|. . . . . . . . . . . . . . .|
11|. . . . . . . . . . . . . . .|
12|. . . . . . . . . . . . . . .|
13|. . . . . . . . . . . . . . .|
14|. . . . . . . . . . . . . . .|
15|. . . . . . . . . . . . . . .|
   ------------------------------
`
	// OpenThree is OpenTwo with one more first stone extending the two.
	OpenThree TestPosition = `
   A B C D E F G H I J K L M N O 
   ------------------------------
 1|. . . . . . . . . . . . . . .|
 2|. . . . . . . . . . . . . . .|
 3|. . O . . . . . . . . . O . .|
 4|. . . . . . . . . . . . . . .|
 5|. . . . . . . . . . . . . . .|
 6|. . . . . . . . . . . . . . .|
 7|. . . . . . . . . . . . . . .|
 8|. . . . . X X X . . . . . . .|
 9|. . . . . . . . . . . . . . .|
10|. . . . . . . . . . . . . . .|
11|. . . . . . . . . . . . . . .|
12|. . . . . . . . . . . . . . .|
13|. . . . . . . . . . . . . . .|
14|. . . . . . . . . . . . . . .|
15|. . . . . . . . . . . . . . .|
   ------------------------------
`
	// WinAndDefend is second has a four against the left edge that must be blocked at E4, but first can complete its own four on row 11.
	WinAndDefend TestPosition = `
   A B C D E F G H I J K L M N O 
   ------------------------------
 1|. . . . . . . . . . . . . . .|
 2|. . . . . . . . . . . . . . .|
 3|. . . . . . . . . . . . . . .|
 4|O O O O . . . . . . . . . . .|
 5|. . . . . . . . . . . . . . .|
 6|. . . . . . . . . . . . . . .|
 7|. . . . . . . . . . . . . . .|
 8|. . . . . . . . . . . . . . .|
 9|. . . . . . . . . . . . . . .|
10|. . . . . . . . . . . . . . .|
11|. . . X X X X . . . . . . . .|
12|. . . . . . . . . . . . . . .|
13|. . . . . . . . . . . . . . .|
14|. . . . . . . . . . . . . . .|
15|. . . . . . . . . . . . . . .|
   ------------------------------
`
	// DoubleFour is second has two edge fours, on rows 1 and 15. They cannot both be blocked.
	DoubleFour TestPosition = `
   A B C D E F G H I J K L M N O 
   ------------------------------
 1|O O O O . . . . . . . . . . .|
 2|. . . . . . . . . . . . . . .|
 3|. . . . . . . . . . . . . . .|
 4|. . . . . . . . . . . . . . .|
 5|. . . . X . . . . . X . . . .|
 6|. . . . . . . . . . . . . . .|
 7|. . . . . . . . . . . . . . .|
 8|. . X . . . . X . . . . X . .|
 9|. . . . . . . . . . . . . . .|
10|. . . . . . . . . . . . . . .|
11|. . . . X . . . . . X . . . .|
12|. . . . . . . . . . . . . . .|
13|. . . . . . . X . . . . . . .|
14|. . . . . . . . . . . . . . .|
15|O O O O . . . . . . . . . . .|
   ------------------------------
`
)

// Board builds the position with the given player to move. It panics on a
// malformed diagram.
func (p TestPosition) Board(turn Stone) *Board {
	b, err := FromPlaintext(string(p), turn)
	if err != nil {
		panic(err)
	}
	return b
}
