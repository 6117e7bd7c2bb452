//go:build !(386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm)

package zerocopy

// Host is big-endian (or unknown), only byte-oriented layouts are ZeroCopy.
const nativeLittleEndian = false
