package codebuf

import "encoding/binary"

const (
	opcodeINT3    = 0xcc
	opcodeMOV_imm = 0xb8 // MOV imm32, r32 (+ register number)
	opcodeRET     = 0xc3

	registerAX = 0

	// Functions are padded to 16 bytes like the compiler does.
	funcAlign = 16
)

// ReturnConst returns machine code for a function that returns v as an int.
func ReturnConst(v uint16) []byte {
	buf := make([]byte, funcAlign)

	// MOVL $v, AX zero extends into RAX, which holds the first result.
	buf[0] = opcodeMOV_imm + registerAX
	binary.LittleEndian.PutUint32(buf[1:], uint32(v))
	buf[5] = opcodeRET

	// Pad the rest of the buffer with INT3 opcodes
	for i := 6; i < len(buf); i++ {
		buf[i] = opcodeINT3
	}

	return buf
}

// Disassemble returns a listing of code, one instruction per line, with the
// addresses it's at.
func Disassemble(code []byte) (string, error) {
	return disassembleX86(code, 64)
}
