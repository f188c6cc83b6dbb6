// Package srv carries the service and message types this client
// exchanges over the middleware, in the shape the rosgo code generator
// emits them.
package srv

import (
	"bytes"
	"encoding/binary"

	"github.com/fetchrobotics/rosgo/ros"
)

// Message type metadata
type typeAddTwoIntsRequest struct {
	definition string
	name       string
	md5sum     string
}

func (t *typeAddTwoIntsRequest) Text() string       { return t.definition }
func (t *typeAddTwoIntsRequest) Name() string       { return t.name }
func (t *typeAddTwoIntsRequest) MD5Sum() string     { return t.md5sum }
func (t *typeAddTwoIntsRequest) NewMessage() ros.Message {
	return new(AddTwoIntsRequest)
}

var (
	// MsgAddTwoIntsRequest is the request message type
	MsgAddTwoIntsRequest = &typeAddTwoIntsRequest{
		"int64 a\nint64 b\n",
		"rospy_tutorials/AddTwoIntsRequest",
		"36d09b846be0b371c5f190354dd3153e",
	}
)

// AddTwoIntsRequest carries the two operands
type AddTwoIntsRequest struct {
	A int64
	B int64
}

func (m *AddTwoIntsRequest) GetType() ros.MessageType { return MsgAddTwoIntsRequest }

func (m *AddTwoIntsRequest) Serialize(buf *bytes.Buffer) error {
	if err := binary.Write(buf, binary.LittleEndian, m.A); err != nil {
		return err
	}
	return binary.Write(buf, binary.LittleEndian, m.B)
}

func (m *AddTwoIntsRequest) Deserialize(buf *ros.Reader) error {
	if err := binary.Read(buf, binary.LittleEndian, &m.A); err != nil {
		return err
	}
	return binary.Read(buf, binary.LittleEndian, &m.B)
}

// Message type metadata
type typeAddTwoIntsResponse struct {
	definition string
	name       string
	md5sum     string
}

func (t *typeAddTwoIntsResponse) Text() string       { return t.definition }
func (t *typeAddTwoIntsResponse) Name() string       { return t.name }
func (t *typeAddTwoIntsResponse) MD5Sum() string     { return t.md5sum }
func (t *typeAddTwoIntsResponse) NewMessage() ros.Message {
	return new(AddTwoIntsResponse)
}

var (
	// MsgAddTwoIntsResponse is the response message type
	MsgAddTwoIntsResponse = &typeAddTwoIntsResponse{
		"int64 sum\n",
		"rospy_tutorials/AddTwoIntsResponse",
		"b88405221c7744fb2e907c3e0e955957",
	}
)

// AddTwoIntsResponse carries the computed sum
type AddTwoIntsResponse struct {
	Sum int64
}

func (m *AddTwoIntsResponse) GetType() ros.MessageType { return MsgAddTwoIntsResponse }

func (m *AddTwoIntsResponse) Serialize(buf *bytes.Buffer) error {
	return binary.Write(buf, binary.LittleEndian, m.Sum)
}

func (m *AddTwoIntsResponse) Deserialize(buf *ros.Reader) error {
	return binary.Read(buf, binary.LittleEndian, &m.Sum)
}

// Service type metadata
type typeAddTwoInts struct {
	name    string
	md5sum  string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *typeAddTwoInts) Name() string                  { return t.name }
func (t *typeAddTwoInts) MD5Sum() string                { return t.md5sum }
func (t *typeAddTwoInts) RequestType() ros.MessageType  { return t.reqType }
func (t *typeAddTwoInts) ResponseType() ros.MessageType { return t.resType }
func (t *typeAddTwoInts) NewService() ros.Service {
	return new(AddTwoInts)
}

var (
	// SrvAddTwoInts is the service type handed to the middleware when
	// building a service client.
	SrvAddTwoInts = &typeAddTwoInts{
		"rospy_tutorials/AddTwoInts",
		"6a2e34150c00229791cc89ff309fff21",
		MsgAddTwoIntsRequest,
		MsgAddTwoIntsResponse,
	}
)

// AddTwoInts pairs a request with its response for one call
type AddTwoInts struct {
	Request  AddTwoIntsRequest
	Response AddTwoIntsResponse
}

func (s *AddTwoInts) ReqMessage() ros.Message { return &s.Request }
func (s *AddTwoInts) ResMessage() ros.Message { return &s.Response }
