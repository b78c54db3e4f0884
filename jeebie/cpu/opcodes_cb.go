package cpu

// RLC B
func opcode0xCB00(cpu *CPU) int {
	cpu.rlc(&cpu.b)
	return 8
}

// RLC C
func opcode0xCB01(cpu *CPU) int {
	cpu.rlc(&cpu.c)
	return 8
}

// RLC D
func opcode0xCB02(cpu *CPU) int {
	cpu.rlc(&cpu.d)
	return 8
}

// RLC E
func opcode0xCB03(cpu *CPU) int {
	cpu.rlc(&cpu.e)
	return 8
}

// RLC H
func opcode0xCB04(cpu *CPU) int {
	cpu.rlc(&cpu.h)
	return 8
}

// RLC L
func opcode0xCB05(cpu *CPU) int {
	cpu.rlc(&cpu.l)
	return 8
}

// RLC (HL)
func opcode0xCB06(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rlc(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// RLC A
func opcode0xCB07(cpu *CPU) int {
	cpu.rlc(&cpu.a)
	return 8
}

// RRC B
func opcode0xCB08(cpu *CPU) int {
	cpu.rrc(&cpu.b)
	return 8
}

// RRC C
func opcode0xCB09(cpu *CPU) int {
	cpu.rrc(&cpu.c)
	return 8
}

// RRC D
func opcode0xCB0A(cpu *CPU) int {
	cpu.rrc(&cpu.d)
	return 8
}

// RRC E
func opcode0xCB0B(cpu *CPU) int {
	cpu.rrc(&cpu.e)
	return 8
}

// RRC H
func opcode0xCB0C(cpu *CPU) int {
	cpu.rrc(&cpu.h)
	return 8
}

// RRC L
func opcode0xCB0D(cpu *CPU) int {
	cpu.rrc(&cpu.l)
	return 8
}

// RRC (HL)
func opcode0xCB0E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rrc(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// RRC A
func opcode0xCB0F(cpu *CPU) int {
	cpu.rrc(&cpu.a)
	return 8
}

// RL B
func opcode0xCB10(cpu *CPU) int {
	cpu.rl(&cpu.b)
	return 8
}

// RL C
func opcode0xCB11(cpu *CPU) int {
	cpu.rl(&cpu.c)
	return 8
}

// RL D
func opcode0xCB12(cpu *CPU) int {
	cpu.rl(&cpu.d)
	return 8
}

// RL E
func opcode0xCB13(cpu *CPU) int {
	cpu.rl(&cpu.e)
	return 8
}

// RL H
func opcode0xCB14(cpu *CPU) int {
	cpu.rl(&cpu.h)
	return 8
}

// RL L
func opcode0xCB15(cpu *CPU) int {
	cpu.rl(&cpu.l)
	return 8
}

// RL (HL)
func opcode0xCB16(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rl(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// RL A
func opcode0xCB17(cpu *CPU) int {
	cpu.rl(&cpu.a)
	return 8
}

// RR B
func opcode0xCB18(cpu *CPU) int {
	cpu.rr(&cpu.b)
	return 8
}

// RR C
func opcode0xCB19(cpu *CPU) int {
	cpu.rr(&cpu.c)
	return 8
}

// RR D
func opcode0xCB1A(cpu *CPU) int {
	cpu.rr(&cpu.d)
	return 8
}

// RR E
func opcode0xCB1B(cpu *CPU) int {
	cpu.rr(&cpu.e)
	return 8
}

// RR H
func opcode0xCB1C(cpu *CPU) int {
	cpu.rr(&cpu.h)
	return 8
}

// RR L
func opcode0xCB1D(cpu *CPU) int {
	cpu.rr(&cpu.l)
	return 8
}

// RR (HL)
func opcode0xCB1E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rr(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// RR A
func opcode0xCB1F(cpu *CPU) int {
	cpu.rr(&cpu.a)
	return 8
}

// SLA B
func opcode0xCB20(cpu *CPU) int {
	cpu.sla(&cpu.b)
	return 8
}

// SLA C
func opcode0xCB21(cpu *CPU) int {
	cpu.sla(&cpu.c)
	return 8
}

// SLA D
func opcode0xCB22(cpu *CPU) int {
	cpu.sla(&cpu.d)
	return 8
}

// SLA E
func opcode0xCB23(cpu *CPU) int {
	cpu.sla(&cpu.e)
	return 8
}

// SLA H
func opcode0xCB24(cpu *CPU) int {
	cpu.sla(&cpu.h)
	return 8
}

// SLA L
func opcode0xCB25(cpu *CPU) int {
	cpu.sla(&cpu.l)
	return 8
}

// SLA (HL)
func opcode0xCB26(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.sla(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// SLA A
func opcode0xCB27(cpu *CPU) int {
	cpu.sla(&cpu.a)
	return 8
}

// SRA B
func opcode0xCB28(cpu *CPU) int {
	cpu.sra(&cpu.b)
	return 8
}

// SRA C
func opcode0xCB29(cpu *CPU) int {
	cpu.sra(&cpu.c)
	return 8
}

// SRA D
func opcode0xCB2A(cpu *CPU) int {
	cpu.sra(&cpu.d)
	return 8
}

// SRA E
func opcode0xCB2B(cpu *CPU) int {
	cpu.sra(&cpu.e)
	return 8
}

// SRA H
func opcode0xCB2C(cpu *CPU) int {
	cpu.sra(&cpu.h)
	return 8
}

// SRA L
func opcode0xCB2D(cpu *CPU) int {
	cpu.sra(&cpu.l)
	return 8
}

// SRA (HL)
func opcode0xCB2E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.sra(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// SRA A
func opcode0xCB2F(cpu *CPU) int {
	cpu.sra(&cpu.a)
	return 8
}

// SWAP B
func opcode0xCB30(cpu *CPU) int {
	cpu.swap(&cpu.b)
	return 8
}

// SWAP C
func opcode0xCB31(cpu *CPU) int {
	cpu.swap(&cpu.c)
	return 8
}

// SWAP D
func opcode0xCB32(cpu *CPU) int {
	cpu.swap(&cpu.d)
	return 8
}

// SWAP E
func opcode0xCB33(cpu *CPU) int {
	cpu.swap(&cpu.e)
	return 8
}

// SWAP H
func opcode0xCB34(cpu *CPU) int {
	cpu.swap(&cpu.h)
	return 8
}

// SWAP L
func opcode0xCB35(cpu *CPU) int {
	cpu.swap(&cpu.l)
	return 8
}

// SWAP (HL)
func opcode0xCB36(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.swap(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// SWAP A
func opcode0xCB37(cpu *CPU) int {
	cpu.swap(&cpu.a)
	return 8
}

// SRL B
func opcode0xCB38(cpu *CPU) int {
	cpu.srl(&cpu.b)
	return 8
}

// SRL C
func opcode0xCB39(cpu *CPU) int {
	cpu.srl(&cpu.c)
	return 8
}

// SRL D
func opcode0xCB3A(cpu *CPU) int {
	cpu.srl(&cpu.d)
	return 8
}

// SRL E
func opcode0xCB3B(cpu *CPU) int {
	cpu.srl(&cpu.e)
	return 8
}

// SRL H
func opcode0xCB3C(cpu *CPU) int {
	cpu.srl(&cpu.h)
	return 8
}

// SRL L
func opcode0xCB3D(cpu *CPU) int {
	cpu.srl(&cpu.l)
	return 8
}

// SRL (HL)
func opcode0xCB3E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.srl(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 16
}

// SRL A
func opcode0xCB3F(cpu *CPU) int {
	cpu.srl(&cpu.a)
	return 8
}

// BIT 0,B
func opcode0xCB40(cpu *CPU) int {
	cpu.bit(0, cpu.b)
	return 8
}

// BIT 0,C
func opcode0xCB41(cpu *CPU) int {
	cpu.bit(0, cpu.c)
	return 8
}

// BIT 0,D
func opcode0xCB42(cpu *CPU) int {
	cpu.bit(0, cpu.d)
	return 8
}

// BIT 0,E
func opcode0xCB43(cpu *CPU) int {
	cpu.bit(0, cpu.e)
	return 8
}

// BIT 0,H
func opcode0xCB44(cpu *CPU) int {
	cpu.bit(0, cpu.h)
	return 8
}

// BIT 0,L
func opcode0xCB45(cpu *CPU) int {
	cpu.bit(0, cpu.l)
	return 8
}

// BIT 0,(HL)
func opcode0xCB46(cpu *CPU) int {
	cpu.bit(0, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 0,A
func opcode0xCB47(cpu *CPU) int {
	cpu.bit(0, cpu.a)
	return 8
}

// BIT 1,B
func opcode0xCB48(cpu *CPU) int {
	cpu.bit(1, cpu.b)
	return 8
}

// BIT 1,C
func opcode0xCB49(cpu *CPU) int {
	cpu.bit(1, cpu.c)
	return 8
}

// BIT 1,D
func opcode0xCB4A(cpu *CPU) int {
	cpu.bit(1, cpu.d)
	return 8
}

// BIT 1,E
func opcode0xCB4B(cpu *CPU) int {
	cpu.bit(1, cpu.e)
	return 8
}

// BIT 1,H
func opcode0xCB4C(cpu *CPU) int {
	cpu.bit(1, cpu.h)
	return 8
}

// BIT 1,L
func opcode0xCB4D(cpu *CPU) int {
	cpu.bit(1, cpu.l)
	return 8
}

// BIT 1,(HL)
func opcode0xCB4E(cpu *CPU) int {
	cpu.bit(1, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 1,A
func opcode0xCB4F(cpu *CPU) int {
	cpu.bit(1, cpu.a)
	return 8
}

// BIT 2,B
func opcode0xCB50(cpu *CPU) int {
	cpu.bit(2, cpu.b)
	return 8
}

// BIT 2,C
func opcode0xCB51(cpu *CPU) int {
	cpu.bit(2, cpu.c)
	return 8
}

// BIT 2,D
func opcode0xCB52(cpu *CPU) int {
	cpu.bit(2, cpu.d)
	return 8
}

// BIT 2,E
func opcode0xCB53(cpu *CPU) int {
	cpu.bit(2, cpu.e)
	return 8
}

// BIT 2,H
func opcode0xCB54(cpu *CPU) int {
	cpu.bit(2, cpu.h)
	return 8
}

// BIT 2,L
func opcode0xCB55(cpu *CPU) int {
	cpu.bit(2, cpu.l)
	return 8
}

// BIT 2,(HL)
func opcode0xCB56(cpu *CPU) int {
	cpu.bit(2, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 2,A
func opcode0xCB57(cpu *CPU) int {
	cpu.bit(2, cpu.a)
	return 8
}

// BIT 3,B
func opcode0xCB58(cpu *CPU) int {
	cpu.bit(3, cpu.b)
	return 8
}

// BIT 3,C
func opcode0xCB59(cpu *CPU) int {
	cpu.bit(3, cpu.c)
	return 8
}

// BIT 3,D
func opcode0xCB5A(cpu *CPU) int {
	cpu.bit(3, cpu.d)
	return 8
}

// BIT 3,E
func opcode0xCB5B(cpu *CPU) int {
	cpu.bit(3, cpu.e)
	return 8
}

// BIT 3,H
func opcode0xCB5C(cpu *CPU) int {
	cpu.bit(3, cpu.h)
	return 8
}

// BIT 3,L
func opcode0xCB5D(cpu *CPU) int {
	cpu.bit(3, cpu.l)
	return 8
}

// BIT 3,(HL)
func opcode0xCB5E(cpu *CPU) int {
	cpu.bit(3, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 3,A
func opcode0xCB5F(cpu *CPU) int {
	cpu.bit(3, cpu.a)
	return 8
}

// BIT 4,B
func opcode0xCB60(cpu *CPU) int {
	cpu.bit(4, cpu.b)
	return 8
}

// BIT 4,C
func opcode0xCB61(cpu *CPU) int {
	cpu.bit(4, cpu.c)
	return 8
}

// BIT 4,D
func opcode0xCB62(cpu *CPU) int {
	cpu.bit(4, cpu.d)
	return 8
}

// BIT 4,E
func opcode0xCB63(cpu *CPU) int {
	cpu.bit(4, cpu.e)
	return 8
}

// BIT 4,H
func opcode0xCB64(cpu *CPU) int {
	cpu.bit(4, cpu.h)
	return 8
}

// BIT 4,L
func opcode0xCB65(cpu *CPU) int {
	cpu.bit(4, cpu.l)
	return 8
}

// BIT 4,(HL)
func opcode0xCB66(cpu *CPU) int {
	cpu.bit(4, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 4,A
func opcode0xCB67(cpu *CPU) int {
	cpu.bit(4, cpu.a)
	return 8
}

// BIT 5,B
func opcode0xCB68(cpu *CPU) int {
	cpu.bit(5, cpu.b)
	return 8
}

// BIT 5,C
func opcode0xCB69(cpu *CPU) int {
	cpu.bit(5, cpu.c)
	return 8
}

// BIT 5,D
func opcode0xCB6A(cpu *CPU) int {
	cpu.bit(5, cpu.d)
	return 8
}

// BIT 5,E
func opcode0xCB6B(cpu *CPU) int {
	cpu.bit(5, cpu.e)
	return 8
}

// BIT 5,H
func opcode0xCB6C(cpu *CPU) int {
	cpu.bit(5, cpu.h)
	return 8
}

// BIT 5,L
func opcode0xCB6D(cpu *CPU) int {
	cpu.bit(5, cpu.l)
	return 8
}

// BIT 5,(HL)
func opcode0xCB6E(cpu *CPU) int {
	cpu.bit(5, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 5,A
func opcode0xCB6F(cpu *CPU) int {
	cpu.bit(5, cpu.a)
	return 8
}

// BIT 6,B
func opcode0xCB70(cpu *CPU) int {
	cpu.bit(6, cpu.b)
	return 8
}

// BIT 6,C
func opcode0xCB71(cpu *CPU) int {
	cpu.bit(6, cpu.c)
	return 8
}

// BIT 6,D
func opcode0xCB72(cpu *CPU) int {
	cpu.bit(6, cpu.d)
	return 8
}

// BIT 6,E
func opcode0xCB73(cpu *CPU) int {
	cpu.bit(6, cpu.e)
	return 8
}

// BIT 6,H
func opcode0xCB74(cpu *CPU) int {
	cpu.bit(6, cpu.h)
	return 8
}

// BIT 6,L
func opcode0xCB75(cpu *CPU) int {
	cpu.bit(6, cpu.l)
	return 8
}

// BIT 6,(HL)
func opcode0xCB76(cpu *CPU) int {
	cpu.bit(6, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 6,A
func opcode0xCB77(cpu *CPU) int {
	cpu.bit(6, cpu.a)
	return 8
}

// BIT 7,B
func opcode0xCB78(cpu *CPU) int {
	cpu.bit(7, cpu.b)
	return 8
}

// BIT 7,C
func opcode0xCB79(cpu *CPU) int {
	cpu.bit(7, cpu.c)
	return 8
}

// BIT 7,D
func opcode0xCB7A(cpu *CPU) int {
	cpu.bit(7, cpu.d)
	return 8
}

// BIT 7,E
func opcode0xCB7B(cpu *CPU) int {
	cpu.bit(7, cpu.e)
	return 8
}

// BIT 7,H
func opcode0xCB7C(cpu *CPU) int {
	cpu.bit(7, cpu.h)
	return 8
}

// BIT 7,L
func opcode0xCB7D(cpu *CPU) int {
	cpu.bit(7, cpu.l)
	return 8
}

// BIT 7,(HL)
func opcode0xCB7E(cpu *CPU) int {
	cpu.bit(7, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 7,A
func opcode0xCB7F(cpu *CPU) int {
	cpu.bit(7, cpu.a)
	return 8
}

// RES 0,B
func opcode0xCB80(cpu *CPU) int {
	cpu.b = resBit(0, cpu.b)
	return 8
}

// RES 0,C
func opcode0xCB81(cpu *CPU) int {
	cpu.c = resBit(0, cpu.c)
	return 8
}

// RES 0,D
func opcode0xCB82(cpu *CPU) int {
	cpu.d = resBit(0, cpu.d)
	return 8
}

// RES 0,E
func opcode0xCB83(cpu *CPU) int {
	cpu.e = resBit(0, cpu.e)
	return 8
}

// RES 0,H
func opcode0xCB84(cpu *CPU) int {
	cpu.h = resBit(0, cpu.h)
	return 8
}

// RES 0,L
func opcode0xCB85(cpu *CPU) int {
	cpu.l = resBit(0, cpu.l)
	return 8
}

// RES 0,(HL)
func opcode0xCB86(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(0, value))
	return 16
}

// RES 0,A
func opcode0xCB87(cpu *CPU) int {
	cpu.a = resBit(0, cpu.a)
	return 8
}

// RES 1,B
func opcode0xCB88(cpu *CPU) int {
	cpu.b = resBit(1, cpu.b)
	return 8
}

// RES 1,C
func opcode0xCB89(cpu *CPU) int {
	cpu.c = resBit(1, cpu.c)
	return 8
}

// RES 1,D
func opcode0xCB8A(cpu *CPU) int {
	cpu.d = resBit(1, cpu.d)
	return 8
}

// RES 1,E
func opcode0xCB8B(cpu *CPU) int {
	cpu.e = resBit(1, cpu.e)
	return 8
}

// RES 1,H
func opcode0xCB8C(cpu *CPU) int {
	cpu.h = resBit(1, cpu.h)
	return 8
}

// RES 1,L
func opcode0xCB8D(cpu *CPU) int {
	cpu.l = resBit(1, cpu.l)
	return 8
}

// RES 1,(HL)
func opcode0xCB8E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(1, value))
	return 16
}

// RES 1,A
func opcode0xCB8F(cpu *CPU) int {
	cpu.a = resBit(1, cpu.a)
	return 8
}

// RES 2,B
func opcode0xCB90(cpu *CPU) int {
	cpu.b = resBit(2, cpu.b)
	return 8
}

// RES 2,C
func opcode0xCB91(cpu *CPU) int {
	cpu.c = resBit(2, cpu.c)
	return 8
}

// RES 2,D
func opcode0xCB92(cpu *CPU) int {
	cpu.d = resBit(2, cpu.d)
	return 8
}

// RES 2,E
func opcode0xCB93(cpu *CPU) int {
	cpu.e = resBit(2, cpu.e)
	return 8
}

// RES 2,H
func opcode0xCB94(cpu *CPU) int {
	cpu.h = resBit(2, cpu.h)
	return 8
}

// RES 2,L
func opcode0xCB95(cpu *CPU) int {
	cpu.l = resBit(2, cpu.l)
	return 8
}

// RES 2,(HL)
func opcode0xCB96(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(2, value))
	return 16
}

// RES 2,A
func opcode0xCB97(cpu *CPU) int {
	cpu.a = resBit(2, cpu.a)
	return 8
}

// RES 3,B
func opcode0xCB98(cpu *CPU) int {
	cpu.b = resBit(3, cpu.b)
	return 8
}

// RES 3,C
func opcode0xCB99(cpu *CPU) int {
	cpu.c = resBit(3, cpu.c)
	return 8
}

// RES 3,D
func opcode0xCB9A(cpu *CPU) int {
	cpu.d = resBit(3, cpu.d)
	return 8
}

// RES 3,E
func opcode0xCB9B(cpu *CPU) int {
	cpu.e = resBit(3, cpu.e)
	return 8
}

// RES 3,H
func opcode0xCB9C(cpu *CPU) int {
	cpu.h = resBit(3, cpu.h)
	return 8
}

// RES 3,L
func opcode0xCB9D(cpu *CPU) int {
	cpu.l = resBit(3, cpu.l)
	return 8
}

// RES 3,(HL)
func opcode0xCB9E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(3, value))
	return 16
}

// RES 3,A
func opcode0xCB9F(cpu *CPU) int {
	cpu.a = resBit(3, cpu.a)
	return 8
}

// RES 4,B
func opcode0xCBA0(cpu *CPU) int {
	cpu.b = resBit(4, cpu.b)
	return 8
}

// RES 4,C
func opcode0xCBA1(cpu *CPU) int {
	cpu.c = resBit(4, cpu.c)
	return 8
}

// RES 4,D
func opcode0xCBA2(cpu *CPU) int {
	cpu.d = resBit(4, cpu.d)
	return 8
}

// RES 4,E
func opcode0xCBA3(cpu *CPU) int {
	cpu.e = resBit(4, cpu.e)
	return 8
}

// RES 4,H
func opcode0xCBA4(cpu *CPU) int {
	cpu.h = resBit(4, cpu.h)
	return 8
}

// RES 4,L
func opcode0xCBA5(cpu *CPU) int {
	cpu.l = resBit(4, cpu.l)
	return 8
}

// RES 4,(HL)
func opcode0xCBA6(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(4, value))
	return 16
}

// RES 4,A
func opcode0xCBA7(cpu *CPU) int {
	cpu.a = resBit(4, cpu.a)
	return 8
}

// RES 5,B
func opcode0xCBA8(cpu *CPU) int {
	cpu.b = resBit(5, cpu.b)
	return 8
}

// RES 5,C
func opcode0xCBA9(cpu *CPU) int {
	cpu.c = resBit(5, cpu.c)
	return 8
}

// RES 5,D
func opcode0xCBAA(cpu *CPU) int {
	cpu.d = resBit(5, cpu.d)
	return 8
}

// RES 5,E
func opcode0xCBAB(cpu *CPU) int {
	cpu.e = resBit(5, cpu.e)
	return 8
}

// RES 5,H
func opcode0xCBAC(cpu *CPU) int {
	cpu.h = resBit(5, cpu.h)
	return 8
}

// RES 5,L
func opcode0xCBAD(cpu *CPU) int {
	cpu.l = resBit(5, cpu.l)
	return 8
}

// RES 5,(HL)
func opcode0xCBAE(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(5, value))
	return 16
}

// RES 5,A
func opcode0xCBAF(cpu *CPU) int {
	cpu.a = resBit(5, cpu.a)
	return 8
}

// RES 6,B
func opcode0xCBB0(cpu *CPU) int {
	cpu.b = resBit(6, cpu.b)
	return 8
}

// RES 6,C
func opcode0xCBB1(cpu *CPU) int {
	cpu.c = resBit(6, cpu.c)
	return 8
}

// RES 6,D
func opcode0xCBB2(cpu *CPU) int {
	cpu.d = resBit(6, cpu.d)
	return 8
}

// RES 6,E
func opcode0xCBB3(cpu *CPU) int {
	cpu.e = resBit(6, cpu.e)
	return 8
}

// RES 6,H
func opcode0xCBB4(cpu *CPU) int {
	cpu.h = resBit(6, cpu.h)
	return 8
}

// RES 6,L
func opcode0xCBB5(cpu *CPU) int {
	cpu.l = resBit(6, cpu.l)
	return 8
}

// RES 6,(HL)
func opcode0xCBB6(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(6, value))
	return 16
}

// RES 6,A
func opcode0xCBB7(cpu *CPU) int {
	cpu.a = resBit(6, cpu.a)
	return 8
}

// RES 7,B
func opcode0xCBB8(cpu *CPU) int {
	cpu.b = resBit(7, cpu.b)
	return 8
}

// RES 7,C
func opcode0xCBB9(cpu *CPU) int {
	cpu.c = resBit(7, cpu.c)
	return 8
}

// RES 7,D
func opcode0xCBBA(cpu *CPU) int {
	cpu.d = resBit(7, cpu.d)
	return 8
}

// RES 7,E
func opcode0xCBBB(cpu *CPU) int {
	cpu.e = resBit(7, cpu.e)
	return 8
}

// RES 7,H
func opcode0xCBBC(cpu *CPU) int {
	cpu.h = resBit(7, cpu.h)
	return 8
}

// RES 7,L
func opcode0xCBBD(cpu *CPU) int {
	cpu.l = resBit(7, cpu.l)
	return 8
}

// RES 7,(HL)
func opcode0xCBBE(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), resBit(7, value))
	return 16
}

// RES 7,A
func opcode0xCBBF(cpu *CPU) int {
	cpu.a = resBit(7, cpu.a)
	return 8
}

// SET 0,B
func opcode0xCBC0(cpu *CPU) int {
	cpu.b = setBit(0, cpu.b)
	return 8
}

// SET 0,C
func opcode0xCBC1(cpu *CPU) int {
	cpu.c = setBit(0, cpu.c)
	return 8
}

// SET 0,D
func opcode0xCBC2(cpu *CPU) int {
	cpu.d = setBit(0, cpu.d)
	return 8
}

// SET 0,E
func opcode0xCBC3(cpu *CPU) int {
	cpu.e = setBit(0, cpu.e)
	return 8
}

// SET 0,H
func opcode0xCBC4(cpu *CPU) int {
	cpu.h = setBit(0, cpu.h)
	return 8
}

// SET 0,L
func opcode0xCBC5(cpu *CPU) int {
	cpu.l = setBit(0, cpu.l)
	return 8
}

// SET 0,(HL)
func opcode0xCBC6(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(0, value))
	return 16
}

// SET 0,A
func opcode0xCBC7(cpu *CPU) int {
	cpu.a = setBit(0, cpu.a)
	return 8
}

// SET 1,B
func opcode0xCBC8(cpu *CPU) int {
	cpu.b = setBit(1, cpu.b)
	return 8
}

// SET 1,C
func opcode0xCBC9(cpu *CPU) int {
	cpu.c = setBit(1, cpu.c)
	return 8
}

// SET 1,D
func opcode0xCBCA(cpu *CPU) int {
	cpu.d = setBit(1, cpu.d)
	return 8
}

// SET 1,E
func opcode0xCBCB(cpu *CPU) int {
	cpu.e = setBit(1, cpu.e)
	return 8
}

// SET 1,H
func opcode0xCBCC(cpu *CPU) int {
	cpu.h = setBit(1, cpu.h)
	return 8
}

// SET 1,L
func opcode0xCBCD(cpu *CPU) int {
	cpu.l = setBit(1, cpu.l)
	return 8
}

// SET 1,(HL)
func opcode0xCBCE(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(1, value))
	return 16
}

// SET 1,A
func opcode0xCBCF(cpu *CPU) int {
	cpu.a = setBit(1, cpu.a)
	return 8
}

// SET 2,B
func opcode0xCBD0(cpu *CPU) int {
	cpu.b = setBit(2, cpu.b)
	return 8
}

// SET 2,C
func opcode0xCBD1(cpu *CPU) int {
	cpu.c = setBit(2, cpu.c)
	return 8
}

// SET 2,D
func opcode0xCBD2(cpu *CPU) int {
	cpu.d = setBit(2, cpu.d)
	return 8
}

// SET 2,E
func opcode0xCBD3(cpu *CPU) int {
	cpu.e = setBit(2, cpu.e)
	return 8
}

// SET 2,H
func opcode0xCBD4(cpu *CPU) int {
	cpu.h = setBit(2, cpu.h)
	return 8
}

// SET 2,L
func opcode0xCBD5(cpu *CPU) int {
	cpu.l = setBit(2, cpu.l)
	return 8
}

// SET 2,(HL)
func opcode0xCBD6(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(2, value))
	return 16
}

// SET 2,A
func opcode0xCBD7(cpu *CPU) int {
	cpu.a = setBit(2, cpu.a)
	return 8
}

// SET 3,B
func opcode0xCBD8(cpu *CPU) int {
	cpu.b = setBit(3, cpu.b)
	return 8
}

// SET 3,C
func opcode0xCBD9(cpu *CPU) int {
	cpu.c = setBit(3, cpu.c)
	return 8
}

// SET 3,D
func opcode0xCBDA(cpu *CPU) int {
	cpu.d = setBit(3, cpu.d)
	return 8
}

// SET 3,E
func opcode0xCBDB(cpu *CPU) int {
	cpu.e = setBit(3, cpu.e)
	return 8
}

// SET 3,H
func opcode0xCBDC(cpu *CPU) int {
	cpu.h = setBit(3, cpu.h)
	return 8
}

// SET 3,L
func opcode0xCBDD(cpu *CPU) int {
	cpu.l = setBit(3, cpu.l)
	return 8
}

// SET 3,(HL)
func opcode0xCBDE(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(3, value))
	return 16
}

// SET 3,A
func opcode0xCBDF(cpu *CPU) int {
	cpu.a = setBit(3, cpu.a)
	return 8
}

// SET 4,B
func opcode0xCBE0(cpu *CPU) int {
	cpu.b = setBit(4, cpu.b)
	return 8
}

// SET 4,C
func opcode0xCBE1(cpu *CPU) int {
	cpu.c = setBit(4, cpu.c)
	return 8
}

// SET 4,D
func opcode0xCBE2(cpu *CPU) int {
	cpu.d = setBit(4, cpu.d)
	return 8
}

// SET 4,E
func opcode0xCBE3(cpu *CPU) int {
	cpu.e = setBit(4, cpu.e)
	return 8
}

// SET 4,H
func opcode0xCBE4(cpu *CPU) int {
	cpu.h = setBit(4, cpu.h)
	return 8
}

// SET 4,L
func opcode0xCBE5(cpu *CPU) int {
	cpu.l = setBit(4, cpu.l)
	return 8
}

// SET 4,(HL)
func opcode0xCBE6(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(4, value))
	return 16
}

// SET 4,A
func opcode0xCBE7(cpu *CPU) int {
	cpu.a = setBit(4, cpu.a)
	return 8
}

// SET 5,B
func opcode0xCBE8(cpu *CPU) int {
	cpu.b = setBit(5, cpu.b)
	return 8
}

// SET 5,C
func opcode0xCBE9(cpu *CPU) int {
	cpu.c = setBit(5, cpu.c)
	return 8
}

// SET 5,D
func opcode0xCBEA(cpu *CPU) int {
	cpu.d = setBit(5, cpu.d)
	return 8
}

// SET 5,E
func opcode0xCBEB(cpu *CPU) int {
	cpu.e = setBit(5, cpu.e)
	return 8
}

// SET 5,H
func opcode0xCBEC(cpu *CPU) int {
	cpu.h = setBit(5, cpu.h)
	return 8
}

// SET 5,L
func opcode0xCBED(cpu *CPU) int {
	cpu.l = setBit(5, cpu.l)
	return 8
}

// SET 5,(HL)
func opcode0xCBEE(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(5, value))
	return 16
}

// SET 5,A
func opcode0xCBEF(cpu *CPU) int {
	cpu.a = setBit(5, cpu.a)
	return 8
}

// SET 6,B
func opcode0xCBF0(cpu *CPU) int {
	cpu.b = setBit(6, cpu.b)
	return 8
}

// SET 6,C
func opcode0xCBF1(cpu *CPU) int {
	cpu.c = setBit(6, cpu.c)
	return 8
}

// SET 6,D
func opcode0xCBF2(cpu *CPU) int {
	cpu.d = setBit(6, cpu.d)
	return 8
}

// SET 6,E
func opcode0xCBF3(cpu *CPU) int {
	cpu.e = setBit(6, cpu.e)
	return 8
}

// SET 6,H
func opcode0xCBF4(cpu *CPU) int {
	cpu.h = setBit(6, cpu.h)
	return 8
}

// SET 6,L
func opcode0xCBF5(cpu *CPU) int {
	cpu.l = setBit(6, cpu.l)
	return 8
}

// SET 6,(HL)
func opcode0xCBF6(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(6, value))
	return 16
}

// SET 6,A
func opcode0xCBF7(cpu *CPU) int {
	cpu.a = setBit(6, cpu.a)
	return 8
}

// SET 7,B
func opcode0xCBF8(cpu *CPU) int {
	cpu.b = setBit(7, cpu.b)
	return 8
}

// SET 7,C
func opcode0xCBF9(cpu *CPU) int {
	cpu.c = setBit(7, cpu.c)
	return 8
}

// SET 7,D
func opcode0xCBFA(cpu *CPU) int {
	cpu.d = setBit(7, cpu.d)
	return 8
}

// SET 7,E
func opcode0xCBFB(cpu *CPU) int {
	cpu.e = setBit(7, cpu.e)
	return 8
}

// SET 7,H
func opcode0xCBFC(cpu *CPU) int {
	cpu.h = setBit(7, cpu.h)
	return 8
}

// SET 7,L
func opcode0xCBFD(cpu *CPU) int {
	cpu.l = setBit(7, cpu.l)
	return 8
}

// SET 7,(HL)
func opcode0xCBFE(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.memory.Write(cpu.getHL(), setBit(7, value))
	return 16
}

// SET 7,A
func opcode0xCBFF(cpu *CPU) int {
	cpu.a = setBit(7, cpu.a)
	return 8
}

