package arith

// EBNF is the grammar accepted by Evaluate, written in the notation of
// golang.org/x/exp/ebnf. Lower-case productions are tokens; whitespace may
// separate any two tokens.
const EBNF = `Expression = Term { ( "+" | "-" ) Term } .
Term       = Factor { ( "*" | "/" ) Factor } .
Factor     = float | "(" Expression ")" .

float      = [ sign ] digits [ "." digits ] [ exponent ] .
exponent   = ( "e" | "E" ) [ sign ] digits .
sign       = "+" | "-" .
digits     = digit { digit } .
digit      = "0" … "9" .
`

// StartProduction is the production of EBNF that Evaluate accepts.
const StartProduction = "Expression"
