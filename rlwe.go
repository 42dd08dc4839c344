/*
Package rlwe is a lattice-based cryptographic library built on a single
arbitrary-precision ring-arithmetic core. The library features:

  - FV, a somewhat-homomorphic encryption scheme supporting encrypted
    addition and multiplication over the ring Z_t[x]/(x^n+1).
  - NewHope-Simple, a Ring-LWE key exchange with bit-exact wire packets.
  - Ring-TESLA, a lattice-based digital signature scheme.

All three schemes share the same Poly/Ring representation, the same
Knuth-Yao discrete Gaussian sampler, and the same coefficient rounding and
centering utilities; see the ring, sampler, and polyutil packages.
*/
package rlwe
