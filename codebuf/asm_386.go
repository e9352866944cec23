package codebuf

import "encoding/binary"

const (
	opcodeINT3       = 0xcc
	opcodeMOV_imm_rm = 0xc7 // MOV imm32, r/m32
	opcodeRET        = 0xc3

	modDisp8   = 1
	registerSP = 4
	sibSP      = 0x24 // no index, base SP

	funcAlign = 16
)

// ReturnConst returns machine code for a function that returns v as an int.
func ReturnConst(v uint16) []byte {
	buf := make([]byte, funcAlign)

	// 386 passes results on the stack, just above the return address:
	// MOVL $v, 4(SP)
	buf[0] = opcodeMOV_imm_rm
	buf[1] = modDisp8<<6 | registerSP
	buf[2] = sibSP
	buf[3] = 4
	binary.LittleEndian.PutUint32(buf[4:], uint32(v))
	buf[8] = opcodeRET

	for i := 9; i < len(buf); i++ {
		buf[i] = opcodeINT3
	}

	return buf
}

// Disassemble returns a listing of code, one instruction per line, with the
// addresses it's at.
func Disassemble(code []byte) (string, error) {
	return disassembleX86(code, 32)
}
