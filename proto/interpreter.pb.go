// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: interpreter.proto

package interpreterv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExecuteResponse_Outcome int32

const (
	ExecuteResponse_OUTCOME_UNSPECIFIED ExecuteResponse_Outcome = 0
	ExecuteResponse_OUTCOME_COMPLETED   ExecuteResponse_Outcome = 1
	ExecuteResponse_OUTCOME_FAILED      ExecuteResponse_Outcome = 2
	ExecuteResponse_OUTCOME_CANCELLED   ExecuteResponse_Outcome = 3
	ExecuteResponse_OUTCOME_TIMED_OUT   ExecuteResponse_Outcome = 4
)

// Enum value maps for ExecuteResponse_Outcome.
var (
	ExecuteResponse_Outcome_name = map[int32]string{
		0: "OUTCOME_UNSPECIFIED",
		1: "OUTCOME_COMPLETED",
		2: "OUTCOME_FAILED",
		3: "OUTCOME_CANCELLED",
		4: "OUTCOME_TIMED_OUT",
	}
	ExecuteResponse_Outcome_value = map[string]int32{
		"OUTCOME_UNSPECIFIED": 0,
		"OUTCOME_COMPLETED":   1,
		"OUTCOME_FAILED":      2,
		"OUTCOME_CANCELLED":   3,
		"OUTCOME_TIMED_OUT":   4,
	}
)

func (x ExecuteResponse_Outcome) Enum() *ExecuteResponse_Outcome {
	p := new(ExecuteResponse_Outcome)
	*p = x
	return p
}

func (x ExecuteResponse_Outcome) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ExecuteResponse_Outcome) Descriptor() protoreflect.EnumDescriptor {
	return file_interpreter_proto_enumTypes[0].Descriptor()
}

func (ExecuteResponse_Outcome) Type() protoreflect.EnumType {
	return &file_interpreter_proto_enumTypes[0]
}

func (x ExecuteResponse_Outcome) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ExecuteResponse_Outcome.Descriptor instead.
func (ExecuteResponse_Outcome) EnumDescriptor() ([]byte, []int) {
	return file_interpreter_proto_rawDescGZIP(), []int{1, 0}
}

type ExecuteRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	RunId    string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	TenantId string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	AgentId  string                 `protobuf:"bytes,3,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Input    *structpb.Struct       `protobuf:"bytes,4,opt,name=input,proto3" json:"input,omitempty"`
	// Soft deadline hint in seconds; 0 means no hint.
	TimeoutS      int32 `protobuf:"varint,5,opt,name=timeout_s,json=timeoutS,proto3" json:"timeout_s,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteRequest) Reset() {
	*x = ExecuteRequest{}
	mi := &file_interpreter_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteRequest) ProtoMessage() {}

func (x *ExecuteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_interpreter_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteRequest.ProtoReflect.Descriptor instead.
func (*ExecuteRequest) Descriptor() ([]byte, []int) {
	return file_interpreter_proto_rawDescGZIP(), []int{0}
}

func (x *ExecuteRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ExecuteRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ExecuteRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ExecuteRequest) GetInput() *structpb.Struct {
	if x != nil {
		return x.Input
	}
	return nil
}

func (x *ExecuteRequest) GetTimeoutS() int32 {
	if x != nil {
		return x.TimeoutS
	}
	return 0
}

type ExecuteResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Terminal outcome of the execution.
	Outcome       ExecuteResponse_Outcome `protobuf:"varint,1,opt,name=outcome,proto3,enum=arc.interpreter.v1.ExecuteResponse_Outcome" json:"outcome,omitempty"`
	Output        *structpb.Struct        `protobuf:"bytes,2,opt,name=output,proto3" json:"output,omitempty"`
	Reason        string                  `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteResponse) Reset() {
	*x = ExecuteResponse{}
	mi := &file_interpreter_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteResponse) ProtoMessage() {}

func (x *ExecuteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_interpreter_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteResponse.ProtoReflect.Descriptor instead.
func (*ExecuteResponse) Descriptor() ([]byte, []int) {
	return file_interpreter_proto_rawDescGZIP(), []int{1}
}

func (x *ExecuteResponse) GetOutcome() ExecuteResponse_Outcome {
	if x != nil {
		return x.Outcome
	}
	return ExecuteResponse_OUTCOME_UNSPECIFIED
}

func (x *ExecuteResponse) GetOutput() *structpb.Struct {
	if x != nil {
		return x.Output
	}
	return nil
}

func (x *ExecuteResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

var File_interpreter_proto protoreflect.FileDescriptor

const file_interpreter_proto_rawDesc = "" +
	"\n" +
	"\x11interpreter.proto\x12\x12arc.interpreter.v1\x1a\x1cgoogle/protobuf/struct.proto\"\xab\x01\n" +
	"\x0eExecuteRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12\x19\n" +
	"\bagent_id\x18\x03 \x01(\tR\aagentId\x12-\n" +
	"\x05input\x18\x04 \x01(\v2\x17.google.protobuf.StructR\x05input\x12\x1b\n" +
	"\ttimeout_s\x18\x05 \x01(\x05R\btimeoutS\"\x9e\x02\n" +
	"\x0fExecuteResponse\x12E\n" +
	"\aoutcome\x18\x01 \x01(\x0e2+.arc.interpreter.v1.ExecuteResponse.OutcomeR\aoutcome\x12/\n" +
	"\x06output\x18\x02 \x01(\v2\x17.google.protobuf.StructR\x06output\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"{\n" +
	"\aOutcome\x12\x17\n" +
	"\x13OUTCOME_UNSPECIFIED\x10\x00\x12\x15\n" +
	"\x11OUTCOME_COMPLETED\x10\x01\x12\x12\n" +
	"\x0eOUTCOME_FAILED\x10\x02\x12\x15\n" +
	"\x11OUTCOME_CANCELLED\x10\x03\x12\x15\n" +
	"\x11OUTCOME_TIMED_OUT\x10\x042d\n" +
	"\x0eRunInterpreter\x12R\n" +
	"\aExecute\x12\".arc.interpreter.v1.ExecuteRequest\x1a#.arc.interpreter.v1.ExecuteResponseB/Z-github.com/agentforge/arc/proto;interpreterv1b\x06proto3"

var (
	file_interpreter_proto_rawDescOnce sync.Once
	file_interpreter_proto_rawDescData []byte
)

func file_interpreter_proto_rawDescGZIP() []byte {
	file_interpreter_proto_rawDescOnce.Do(func() {
		file_interpreter_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_interpreter_proto_rawDesc), len(file_interpreter_proto_rawDesc)))
	})
	return file_interpreter_proto_rawDescData
}

var file_interpreter_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_interpreter_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_interpreter_proto_goTypes = []any{
	(ExecuteResponse_Outcome)(0), // 0: arc.interpreter.v1.ExecuteResponse.Outcome
	(*ExecuteRequest)(nil),       // 1: arc.interpreter.v1.ExecuteRequest
	(*ExecuteResponse)(nil),      // 2: arc.interpreter.v1.ExecuteResponse
	(*structpb.Struct)(nil),      // 3: google.protobuf.Struct
}
var file_interpreter_proto_depIdxs = []int32{
	3, // 0: arc.interpreter.v1.ExecuteRequest.input:type_name -> google.protobuf.Struct
	0, // 1: arc.interpreter.v1.ExecuteResponse.outcome:type_name -> arc.interpreter.v1.ExecuteResponse.Outcome
	3, // 2: arc.interpreter.v1.ExecuteResponse.output:type_name -> google.protobuf.Struct
	1, // 3: arc.interpreter.v1.RunInterpreter.Execute:input_type -> arc.interpreter.v1.ExecuteRequest
	2, // 4: arc.interpreter.v1.RunInterpreter.Execute:output_type -> arc.interpreter.v1.ExecuteResponse
	4, // [4:5] is the sub-list for method output_type
	3, // [3:4] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_interpreter_proto_init() }
func file_interpreter_proto_init() {
	if File_interpreter_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_interpreter_proto_rawDesc), len(file_interpreter_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_interpreter_proto_goTypes,
		DependencyIndexes: file_interpreter_proto_depIdxs,
		EnumInfos:         file_interpreter_proto_enumTypes,
		MessageInfos:      file_interpreter_proto_msgTypes,
	}.Build()
	File_interpreter_proto = out.File
	file_interpreter_proto_goTypes = nil
	file_interpreter_proto_depIdxs = nil
}
