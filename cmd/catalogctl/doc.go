// Command catalogctl runs the film catalog pipeline from a terminal and
// exposes the magnitude codec for quick checks.
//
//	catalogctl fetch --url http://localhost:9099/filmes
//	catalogctl profit --budget "US$ 160 milhões" --box-office "US$ 836,8 milhões"
//	catalogctl magnitude parse "1,5 bilhão"
//	catalogctl magnitude format 1500000000
package main
