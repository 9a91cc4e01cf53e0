package days

import (
	"fmt"
	"sort"
	"strings"
)

// packet is either an integer (list nil) or a list (value ignored).
type packet struct {
	value  int
	list   []packet
	isList bool
}

func intPacket(v int) packet     { return packet{value: v} }
func listPacket(p packet) packet { return packet{list: []packet{p}, isList: true} }

// packetParser is a recursive-descent cursor over one packet line.
type packetParser struct {
	s   string
	pos int
}

func parsePacket(line string) (packet, error) {
	p := &packetParser{s: line}
	pkt, err := p.parse()
	if err != nil {
		return packet{}, err
	}
	if p.pos != len(p.s) {
		return packet{}, fmt.Errorf("%w: trailing %q in packet", ErrParse, p.s[p.pos:])
	}

	return pkt, nil
}

func (p *packetParser) parse() (packet, error) {
	if p.pos >= len(p.s) {
		return packet{}, fmt.Errorf("%w: truncated packet %q", ErrParse, p.s)
	}
	if p.s[p.pos] != '[' {
		return p.parseInt()
	}
	p.pos++ // '['
	pkt := packet{isList: true}
	for p.pos < len(p.s) && p.s[p.pos] != ']' {
		child, err := p.parse()
		if err != nil {
			return packet{}, err
		}
		pkt.list = append(pkt.list, child)
		if p.pos < len(p.s) && p.s[p.pos] == ',' {
			p.pos++
		}
	}
	if p.pos >= len(p.s) {
		return packet{}, fmt.Errorf("%w: unclosed list in %q", ErrParse, p.s)
	}
	p.pos++ // ']'

	return pkt, nil
}

func (p *packetParser) parseInt() (packet, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return packet{}, fmt.Errorf("%w: expected digit at %q", ErrParse, p.s[start:])
	}
	v := 0
	for _, c := range p.s[start:p.pos] {
		v = v*10 + int(c-'0')
	}

	return intPacket(v), nil
}

// comparePackets orders two packets: negative when a < b, zero when
// equal, positive when a > b. A bare integer compared against a list is
// promoted to a one-element list.
func comparePackets(a, b packet) int {
	switch {
	case !a.isList && !b.isList:
		return a.value - b.value
	case !a.isList:
		return comparePackets(listPacket(a), b)
	case !b.isList:
		return comparePackets(a, listPacket(b))
	}
	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := comparePackets(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}

	return len(a.list) - len(b.list)
}

// Day13 sums indices of correctly ordered pairs, then sorts all packets
// with the two dividers and multiplies the divider positions.
func Day13(path string) (Result, error) {
	input, err := readAll(path)
	if err != nil {
		return Result{}, err
	}

	var packets []packet
	orderedSum := 0
	for i, block := range blocks(input) {
		first, second, ok := strings.Cut(block, "\n")
		if !ok {
			return Result{}, fmt.Errorf("%w: packet pair %q", ErrParse, block)
		}
		a, err := parsePacket(first)
		if err != nil {
			return Result{}, err
		}
		b, err := parsePacket(strings.TrimRight(second, "\n"))
		if err != nil {
			return Result{}, err
		}
		if comparePackets(a, b) < 0 {
			orderedSum += i + 1
		}
		packets = append(packets, a, b)
	}

	div1 := listPacket(listPacket(intPacket(2)))
	div2 := listPacket(listPacket(intPacket(6)))
	packets = append(packets, div1, div2)
	sort.Slice(packets, func(i, j int) bool {
		return comparePackets(packets[i], packets[j]) < 0
	})

	decoderKey := 1
	for i, pkt := range packets {
		if comparePackets(pkt, div1) == 0 || comparePackets(pkt, div2) == 0 {
			decoderKey *= i + 1
		}
	}

	return ints(orderedSum, decoderKey), nil
}
