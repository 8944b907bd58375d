package packet

import "bytes"

// UpdateMessage is the BGP UPDATE message body (RFC 4271 §4.3).
type UpdateMessage struct {
	WithdrawnRoutes []Ipv4Nlri
	PathAttributes  []PathAttribute
	NLRI            []Ipv4Nlri
}

func parseUpdateMsg(r *reader, ctx *ParseContext) (*UpdateMessage, error) {
	wlen, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	wdata, err := r.readBytes(int(wlen))
	if err != nil {
		return nil, err
	}
	addPathW := ctx.addPathRecv(AfiSafi{AFIIPv4, SAFIUnicast})
	wr := newReader(wdata)
	var withdrawn []Ipv4Nlri
	for wr.remaining() > 0 {
		n, err := parseIpv4Nlri(wr, addPathW)
		if err != nil {
			return nil, err
		}
		withdrawn = append(withdrawn, n)
	}

	alen, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	adata, err := r.readBytes(int(alen))
	if err != nil {
		return nil, err
	}
	ar := newReader(adata)
	var attrs []PathAttribute
	for ar.remaining() > 0 {
		pa, err := parseAttribute(ar, ctx)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, pa)
	}

	addPathN := ctx.addPathRecv(AfiSafi{AFIIPv4, SAFIUnicast})
	var nlri []Ipv4Nlri
	for r.remaining() > 0 {
		n, err := parseIpv4Nlri(r, addPathN)
		if err != nil {
			return nil, err
		}
		nlri = append(nlri, n)
	}

	if len(nlri) > 0 {
		for _, t := range [...]AttrType{AttrTypeOrigin, AttrTypeASPath, AttrTypeNextHop} {
			if !hasAttr(attrs, t) {
				return nil, &Error{Kind: KindMalformed, Type: t, Reason: "mandatory well-known attribute missing while NLRI are present"}
			}
		}
	}

	return &UpdateMessage{WithdrawnRoutes: withdrawn, PathAttributes: attrs, NLRI: nlri}, nil
}

func (m *UpdateMessage) emitBody(buf *bytes.Buffer) {
	var wbuf bytes.Buffer
	for _, n := range m.WithdrawnRoutes {
		emitIpv4Nlri(&wbuf, n)
	}
	writeUint16(buf, uint16(wbuf.Len()))
	buf.Write(wbuf.Bytes())

	var abuf bytes.Buffer
	for _, a := range m.PathAttributes {
		a.emit(&abuf)
	}
	writeUint16(buf, uint16(abuf.Len()))
	buf.Write(abuf.Bytes())

	for _, n := range m.NLRI {
		emitIpv4Nlri(buf, n)
	}
}
