package packet

// AddPathSendReceive is the 1-byte send/receive field of the Add-Path
// capability (RFC 7911 §4).
type AddPathSendReceive uint8

const (
	AddPathReceive AddPathSendReceive = 1
	AddPathSend    AddPathSendReceive = 2
	AddPathBoth    AddPathSendReceive = 3
)

func (v AddPathSendReceive) isReceive() bool { return v == AddPathReceive || v == AddPathBoth }
func (v AddPathSendReceive) isSend() bool    { return v == AddPathSend || v == AddPathBoth }

// AddPathMode records, from the local speaker's point of view, whether a
// 4-byte path identifier should be expected on receive and emitted on send
// for one (AFI,SAFI).
type AddPathMode struct {
	Receive bool
	Send    bool
}

// ParseContext carries the state negotiated during OPEN capability exchange
// that attribute parsers need but that isn't present on the wire inside the
// UPDATE message itself: whether 4-octet ASNs are in effect, and which
// families use Add-Path. It is a plain value threaded explicitly through the
// parse call tree (the "explicit parameter" alternative spec.md §4.9/§9
// offers over a thread-local) and must never outlive a single parse call.
type ParseContext struct {
	AS4             bool
	ExtendedMessage bool
	AddPath         map[AfiSafi]AddPathMode
}

func NewParseContext() *ParseContext {
	return &ParseContext{AddPath: make(map[AfiSafi]AddPathMode)}
}

func (c *ParseContext) addPathRecv(k AfiSafi) bool {
	if c == nil {
		return false
	}
	return c.AddPath[k].Receive
}

func (c *ParseContext) addPathSend(k AfiSafi) bool {
	if c == nil {
		return false
	}
	return c.AddPath[k].Send
}

// ContextFromOpenPair derives a ParseContext from the local and remote OPEN
// messages exchanged during session establishment.
func ContextFromOpenPair(local, remote *OpenMessage) *ParseContext {
	ctx := NewParseContext()
	ctx.AS4 = hasCapAS4(local) && hasCapAS4(remote)
	ctx.ExtendedMessage = hasCapExtendedMessage(local) && hasCapExtendedMessage(remote)

	localAP := collectAddPath(local)
	remoteAP := collectAddPath(remote)

	seen := NewAfiSafiSet()
	for k := range localAP {
		seen.Add(k)
	}
	for k := range remoteAP {
		seen.Add(k)
	}
	for _, k := range seen.Ordered() {
		mode := AddPathMode{}
		if remoteAP[k].isSend() && localAP[k].isReceive() {
			mode.Receive = true
		}
		if localAP[k].isSend() && remoteAP[k].isReceive() {
			mode.Send = true
		}
		ctx.AddPath[k] = mode
	}
	return ctx
}

func hasCapAS4(o *OpenMessage) bool {
	if o == nil {
		return false
	}
	for _, c := range o.Capabilities {
		if c.Code() == CapCodeAS4 {
			return true
		}
	}
	return false
}

func hasCapExtendedMessage(o *OpenMessage) bool {
	if o == nil {
		return false
	}
	for _, c := range o.Capabilities {
		if c.Code() == CapCodeExtendedMessage {
			return true
		}
	}
	return false
}

func collectAddPath(o *OpenMessage) map[AfiSafi]AddPathSendReceive {
	out := make(map[AfiSafi]AddPathSendReceive)
	if o == nil {
		return out
	}
	for _, c := range o.Capabilities {
		ap, ok := c.(CapAddPath)
		if !ok {
			continue
		}
		for _, v := range ap.Values {
			out[AfiSafi{v.AFI, v.SAFI}] = v.SendReceive
		}
	}
	return out
}
