//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package zerocopy

// nativeLittleEndian is true if host byte order matches buffer byte order,
// so native multi-byte scalars can be reinterpreted in place.
const nativeLittleEndian = true
