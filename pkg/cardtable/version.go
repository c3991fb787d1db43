package cardtable

// Version is the ansicards release version.
const Version = "0.3.0"
